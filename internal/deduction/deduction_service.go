package deduction

import (
	"context"
	"net/http"

	"github.com/Pachosan13/7granos-app-sub000/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid branch id",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amounts must be positive decimal values",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=deduction_service.go -destination=mock/deduction_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, branchID string, req CreateDeductionRequest) (DeductionResponse, error)
	GetByEmployee(ctx context.Context, branchID, employeeID string) ([]DeductionResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, branchID string, req CreateDeductionRequest) (DeductionResponse, error) {
	branchUUID, err := uuid.Parse(branchID)
	if err != nil {
		return DeductionResponse{}, ErrInvalidBranchID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return DeductionResponse{}, apperror.InvalidField("employee_id")
	}

	total, err := decimal.NewFromString(req.TotalAmount)
	if err != nil || total.LessThanOrEqual(decimal.Zero) {
		return DeductionResponse{}, ErrInvalidAmount
	}
	installment, err := decimal.NewFromString(req.Installment)
	if err != nil || installment.LessThanOrEqual(decimal.Zero) {
		return DeductionResponse{}, ErrInvalidAmount
	}

	d := &ContractualDeduction{
		BranchID:    branchUUID,
		EmployeeID:  employeeUUID,
		Kind:        req.Kind,
		TotalAmount: total,
		Balance:     total,
		Installment: installment,
		Priority:    req.Priority,
		Active:      true,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return DeductionResponse{}, err
	}
	return mapToResponse(*d), nil
}

func (s *service) GetByEmployee(ctx context.Context, branchID, employeeID string) ([]DeductionResponse, error) {
	deductions, err := s.repo.FindByEmployee(ctx, branchID, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]DeductionResponse, len(deductions))
	for i, d := range deductions {
		resp[i] = mapToResponse(d)
	}
	return resp, nil
}

func mapToResponse(d ContractualDeduction) DeductionResponse {
	return DeductionResponse{
		ID:          d.ID.String(),
		BranchID:    d.BranchID.String(),
		EmployeeID:  d.EmployeeID.String(),
		Kind:        d.Kind,
		TotalAmount: d.TotalAmount.StringFixed(2),
		Balance:     d.Balance.StringFixed(2),
		Installment: d.Installment.StringFixed(2),
		Priority:    d.Priority,
		Active:      d.Active,
	}
}
