package domain

type StatsOverview struct {
	TotalEmployees   int `db:"total_employees" json:"total_employees"`
	TotalDepartments int `db:"total_departments" json:"total_departments"`
	TotalRoles       int `db:"total_roles" json:"total_roles"`
	ActiveEmployees  int `db:"active_employees" json:"active_employees"`
}

type DepartmentHeadcount struct {
	Name  string `db:"name" json:"name"`
	Count int    `db:"count" json:"count"`
}

type SalaryStats struct {
	Average float64 `db:"average" json:"average"`
	Total   float64 `db:"total" json:"total"`
	Min     float64 `db:"min" json:"min"`
	Max     float64 `db:"max" json:"max"`
}

// DashboardStats is the aggregate payload behind the dashboard view.
type DashboardStats struct {
	Overview              StatsOverview         `json:"overview"`
	EmployeesByDepartment []DepartmentHeadcount `json:"employees_by_department"`
	SalaryStats           SalaryStats           `json:"salary_stats"`
	RecentEmployees       []Employee            `json:"recent_employees"`
}
