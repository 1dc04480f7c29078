package paycode

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Pachosan13/7granos-app-sub000/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrPayCodeNotFound = apperror.New(
		apperror.CodeNotFound,
		"pay code not found",
		http.StatusNotFound,
	)
	ErrPayCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"pay code already exists",
		http.StatusConflict,
	)
	ErrOvertimeKindRequired = apperror.New(
		apperror.CodeInvalidInput,
		"overtime_kind is required for OVERTIME category",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=paycode_service.go -destination=mock/paycode_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayCodeRequest) (PayCodeResponse, error)
	GetAll(ctx context.Context) ([]PayCodeResponse, error)
	Update(ctx context.Context, code string, req UpdatePayCodeRequest) (PayCodeResponse, error)
	Delete(ctx context.Context, code string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreatePayCodeRequest) (PayCodeResponse, error) {
	kind := req.OvertimeKind
	if kind == "" {
		kind = OvertimeNone
	}
	if req.Category == CategoryOvertime && kind == OvertimeNone {
		return PayCodeResponse{}, ErrOvertimeKindRequired
	}

	pc := &PayCode{
		Code:         strings.ToUpper(req.Code),
		Name:         req.Name,
		Class:        req.Class,
		Category:     req.Category,
		OvertimeKind: kind,
	}
	if err := s.repo.Create(ctx, pc); err != nil {
		return PayCodeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*pc), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayCodeResponse, error) {
	codes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]PayCodeResponse, len(codes))
	for i, c := range codes {
		resp[i] = mapToResponse(c)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, code string, req UpdatePayCodeRequest) (PayCodeResponse, error) {
	pc, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return PayCodeResponse{}, mapRepositoryError(err)
	}

	kind := req.OvertimeKind
	if kind == "" {
		kind = OvertimeNone
	}
	if req.Category == CategoryOvertime && kind == OvertimeNone {
		return PayCodeResponse{}, ErrOvertimeKindRequired
	}

	pc.Name = req.Name
	pc.Class = req.Class
	pc.Category = req.Category
	pc.OvertimeKind = kind

	if err := s.repo.Update(ctx, pc); err != nil {
		return PayCodeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*pc), nil
}

func (s *service) Delete(ctx context.Context, code string) error {
	return mapRepositoryError(s.repo.Delete(ctx, code))
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPayCodeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrPayCodeAlreadyExists
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return ErrPayCodeAlreadyExists
	}

	return err
}

func mapToResponse(pc PayCode) PayCodeResponse {
	return PayCodeResponse{
		ID:           pc.ID.String(),
		Code:         pc.Code,
		Name:         pc.Name,
		Class:        pc.Class,
		Category:     pc.Category,
		OvertimeKind: pc.OvertimeKind,
	}
}
