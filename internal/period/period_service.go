package period

import (
	"context"
	"errors"
	"net/http"

	"github.com/Pachosan13/7granos-app-sub000/internal/shared/apperror"

	"gorm.io/gorm"
)

var (
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"pay period not found",
		http.StatusNotFound,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid pay period state transition",
		http.StatusBadRequest,
	)
)

type PeriodResponse struct {
	ID        string `json:"id"`
	BranchID  string `json:"branch_id"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Frequency string `json:"frequency"`
	State     string `json:"state"`
}

//go:generate mockgen -source=period_service.go -destination=mock/period_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, branchID string) ([]PeriodResponse, error)
	GetByID(ctx context.Context, branchID, id string) (PeriodResponse, error)
	Approve(ctx context.Context, branchID, id string) (PeriodResponse, error)
	MarkAsPaid(ctx context.Context, branchID, id string) (PeriodResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, branchID string) ([]PeriodResponse, error) {
	periods, err := s.repo.FindAllByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	resp := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, branchID, id string) (PeriodResponse, error) {
	p, err := s.findPeriod(ctx, branchID, id)
	if err != nil {
		return PeriodResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Approve(ctx context.Context, branchID, id string) (PeriodResponse, error) {
	return s.transition(ctx, branchID, id, StateApproved)
}

func (s *service) MarkAsPaid(ctx context.Context, branchID, id string) (PeriodResponse, error) {
	return s.transition(ctx, branchID, id, StatePaid)
}

func (s *service) transition(ctx context.Context, branchID, id, to string) (PeriodResponse, error) {
	p, err := s.findPeriod(ctx, branchID, id)
	if err != nil {
		return PeriodResponse{}, err
	}

	if !CanTransition(p.State, to) {
		return PeriodResponse{}, ErrInvalidTransition
	}

	if err := s.repo.UpdateState(ctx, id, to); err != nil {
		return PeriodResponse{}, err
	}
	p.State = to
	return mapToResponse(*p), nil
}

func (s *service) findPeriod(ctx context.Context, branchID, id string) (*Period, error) {
	p, err := s.repo.FindByIDAndBranch(ctx, branchID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}
	return p, nil
}

func mapToResponse(p Period) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID.String(),
		BranchID:  p.BranchID.String(),
		Month:     p.Month,
		Year:      p.Year,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		Frequency: p.Frequency,
		State:     p.State,
	}
}
