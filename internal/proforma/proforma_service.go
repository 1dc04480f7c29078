package proforma

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Pachosan13/7granos-app-sub000/internal/payroll"
	"github.com/Pachosan13/7granos-app-sub000/internal/period"
	payrollerrors "github.com/Pachosan13/7granos-app-sub000/internal/payroll/errors"
	proformaerrors "github.com/Pachosan13/7granos-app-sub000/internal/proforma/errors"
	"github.com/Pachosan13/7granos-app-sub000/internal/shared/counter"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sequenceCounterType = "proforma_sequence"

//go:generate mockgen -source=proforma_service.go -destination=mock/proforma_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, branchID, periodID string) (GenerateResponse, error)
	CreateMapping(ctx context.Context, req CreateMappingRequest) (MappingResponse, error)
	GetMappings(ctx context.Context) ([]MappingResponse, error)
}

type service struct {
	repo        Repository
	payrollRepo payroll.Repository
	periodRepo  period.Repository
	counterRepo counter.Repository
	writer      *Writer
	logger      *zap.Logger
}

// NewService menerima writer nil bila artifact tidak perlu disimpan ke disk
// (response HTTP tetap memuat ledger lengkap).
func NewService(
	repo Repository,
	payrollRepo payroll.Repository,
	periodRepo period.Repository,
	counterRepo counter.Repository,
	writer *Writer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("proforma")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("proforma")
	}
	return &service{
		repo:        repo,
		payrollRepo: payrollRepo,
		periodRepo:  periodRepo,
		counterRepo: counterRepo,
		writer:      writer,
		logger:      l,
	}
}

func (s *service) Generate(ctx context.Context, branchID, periodID string) (GenerateResponse, error) {
	p, err := s.periodRepo.FindByIDAndBranch(ctx, branchID, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GenerateResponse{}, payrollerrors.ErrPeriodNotFound
		}
		return GenerateResponse{}, err
	}
	if p.State == period.StateDraft {
		return GenerateResponse{}, proformaerrors.ErrPeriodNotCalculated
	}

	totals, err := s.payrollRepo.FindTotalsByPeriod(ctx, branchID, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GenerateResponse{}, proformaerrors.ErrTotalsNotFound
		}
		return GenerateResponse{}, err
	}

	chart, err := s.repo.Chart(ctx)
	if err != nil {
		return GenerateResponse{}, err
	}

	sequence, err := s.counterRepo.GetNextValue(ctx, branchID, sequenceCounterType)
	if err != nil {
		return GenerateResponse{}, err
	}

	artifact, err := buildProforma(p, totals, chart, sequence, time.Now())
	if err != nil {
		return GenerateResponse{}, err
	}

	var path string
	if s.writer != nil {
		path, err = s.writer.Write(artifact)
		if err != nil {
			// Gagal tulis file tidak merusak hasil payroll yang sudah
			// tersimpan; surfacing sebagai error endpoint ini saja.
			s.logger.Error("write proforma artifact failed",
				zap.String("period_id", periodID),
				zap.Error(err),
			)
			return GenerateResponse{}, err
		}
	}

	s.logger.Info("proforma generated",
		zap.String("branch_id", branchID),
		zap.String("period_id", periodID),
		zap.Int64("sequence", sequence),
		zap.String("total_debit", artifact.TotalDebit.StringFixed(2)),
	)

	return mapGenerateResponse(artifact, path), nil
}

func (s *service) CreateMapping(ctx context.Context, req CreateMappingRequest) (MappingResponse, error) {
	side := strings.ToUpper(req.Side)
	if side != SideDebit && side != SideCredit {
		return MappingResponse{}, proformaerrors.ErrInvalidSide
	}

	m := &AccountMapping{
		Code:        strings.ToUpper(req.Code),
		Account:     req.Account,
		AccountName: req.AccountName,
		Side:        side,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return MappingResponse{}, proformaerrors.ErrDuplicateCode
		}
		return MappingResponse{}, err
	}
	return mapMappingResponse(*m), nil
}

func (s *service) GetMappings(ctx context.Context) ([]MappingResponse, error) {
	mappings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]MappingResponse, len(mappings))
	for i, m := range mappings {
		resp[i] = mapMappingResponse(m)
	}
	return resp, nil
}
