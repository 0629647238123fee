package domain

import "testing"

func TestParseAccountRole(t *testing.T) {
	cases := []struct {
		raw     string
		want    AccountRole
		wantErr bool
	}{
		{"ADMIN", AccountRoleAdmin, false},
		{"hr", AccountRoleHR, false},
		{" employee ", AccountRoleEmployee, false},
		{"", AccountRoleEmployee, false},
		{"SUPERUSER", "", true},
	}
	for _, tc := range cases {
		got, err := ParseAccountRole(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAccountRole(%q): expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAccountRole(%q): %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAccountRole(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role       AccountRole
		capability Capability
		want       bool
	}{
		{AccountRoleAdmin, CapabilityViewRecords, true},
		{AccountRoleAdmin, CapabilityManageRecords, true},
		{AccountRoleAdmin, CapabilityDeleteRecords, true},
		{AccountRoleHR, CapabilityViewRecords, true},
		{AccountRoleHR, CapabilityManageRecords, true},
		{AccountRoleHR, CapabilityDeleteRecords, false},
		{AccountRoleEmployee, CapabilityViewRecords, true},
		{AccountRoleEmployee, CapabilityManageRecords, false},
		{AccountRoleEmployee, CapabilityDeleteRecords, false},
		{AccountRole("UNKNOWN"), CapabilityViewRecords, false},
	}
	for _, tc := range cases {
		if got := tc.role.Can(tc.capability); got != tc.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tc.role, tc.capability, got, tc.want)
		}
	}
}
