package branch

import (
	"context"
)

//go:generate mockgen -source=branch_service.go -destination=mock/branch_service_mock.go -package=mock
type Service interface {
	GetConfig(ctx context.Context, branchID string) (ConfigResponse, error)
	UpdateConfig(ctx context.Context, branchID string, req UpdateConfigRequest) (ConfigResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetConfig(ctx context.Context, branchID string) (ConfigResponse, error) {
	cfg, err := s.repo.GetConfig(ctx, branchID)
	if err != nil {
		return ConfigResponse{}, err
	}
	return mapConfigResponse(cfg), nil
}

func (s *service) UpdateConfig(ctx context.Context, branchID string, req UpdateConfigRequest) (ConfigResponse, error) {
	cfg, err := s.repo.GetConfig(ctx, branchID)
	if err != nil {
		return ConfigResponse{}, err
	}

	cfg.IncludeTipsInSocialSecurity = *req.IncludeTipsInSocialSecurity
	cfg.IncludeTipsInIncomeTax = *req.IncludeTipsInIncomeTax

	if err := s.repo.SaveConfig(ctx, cfg); err != nil {
		return ConfigResponse{}, err
	}
	return mapConfigResponse(cfg), nil
}

func mapConfigResponse(cfg *Config) ConfigResponse {
	return ConfigResponse{
		BranchID:                    cfg.BranchID.String(),
		IncludeTipsInSocialSecurity: cfg.IncludeTipsInSocialSecurity,
		IncludeTipsInIncomeTax:      cfg.IncludeTipsInIncomeTax,
	}
}
