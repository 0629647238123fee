package service

import (
	"context"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
	"github.com/hrdash/hr-dashboard-api/internal/repository/ports"
)

// recentEmployeeCount mirrors the dashboard's "recent hires" card.
const recentEmployeeCount = 5

type StatsService struct {
	stats ports.StatsRepository
}

func NewStatsService(stats ports.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

func (s *StatsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	overview, err := s.stats.Overview(ctx)
	if err != nil {
		return nil, err
	}
	byDepartment, err := s.stats.EmployeesByDepartment(ctx)
	if err != nil {
		return nil, err
	}
	salaries, err := s.stats.SalaryStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.stats.RecentEmployees(ctx, recentEmployeeCount)
	if err != nil {
		return nil, err
	}
	return &domain.DashboardStats{
		Overview:              *overview,
		EmployeesByDepartment: byDepartment,
		SalaryStats:           *salaries,
		RecentEmployees:       recent,
	}, nil
}
