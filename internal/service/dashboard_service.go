package service

import (
	"wearspace-api/internal/repository"
)

type DashboardService interface {
	GetStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	txRepo repository.TransactionRepository
}

func NewDashboardService(txRepo repository.TransactionRepository) DashboardService {
	return &dashboardService{txRepo: txRepo}
}

func (s *dashboardService) GetStats() (*repository.DashboardStats, error) {
	return s.txRepo.GetDashboardStats()
}
