package service

import (
	"context"

	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/repository"
	"github.com/devanap/fabrismart-full/internal/server"
)

type StatsService struct {
	server *server.Server
	repo   *repository.StatsRepository
}

func NewStatsService(s *server.Server, repo *repository.StatsRepository) *StatsService {
	return &StatsService{
		server: s,
		repo:   repo,
	}
}

// Get computes a fresh report; nothing is cached.
func (s *StatsService) Get(ctx context.Context) (*model.StatsReport, error) {
	report, err := s.repo.Report(ctx)
	if err != nil {
		return nil, storeError(ctx, "stats_report", err, nil)
	}
	return report, nil
}
