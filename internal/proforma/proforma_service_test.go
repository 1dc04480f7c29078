package proforma_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Pachosan13/7granos-app-sub000/internal/payroll"
	payrollerrors "github.com/Pachosan13/7granos-app-sub000/internal/payroll/errors"
	"github.com/Pachosan13/7granos-app-sub000/internal/period"
	"github.com/Pachosan13/7granos-app-sub000/internal/proforma"
	proformaerrors "github.com/Pachosan13/7granos-app-sub000/internal/proforma/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeMappingRepository struct {
	chartFn func(ctx context.Context) (map[string]proforma.AccountMapping, error)
}

func (f *fakeMappingRepository) Create(ctx context.Context, m *proforma.AccountMapping) error {
	return nil
}

func (f *fakeMappingRepository) FindAll(ctx context.Context) ([]proforma.AccountMapping, error) {
	return nil, nil
}

func (f *fakeMappingRepository) Chart(ctx context.Context) (map[string]proforma.AccountMapping, error) {
	if f.chartFn != nil {
		return f.chartFn(ctx)
	}
	return map[string]proforma.AccountMapping{
		"BASE_SAL":              {Code: "BASE_SAL", Account: "6100", AccountName: "Salaries expense", Side: proforma.SideDebit},
		"SSO":                   {Code: "SSO", Account: "2310", AccountName: "Social security payable", Side: proforma.SideCredit},
		proforma.CodeNetPayable: {Code: proforma.CodeNetPayable, Account: "2300", AccountName: "Wages payable", Side: proforma.SideCredit},
	}, nil
}

type fakeTotalsRepository struct {
	findTotalsByPeriodFn func(ctx context.Context, branchID, periodID string) (*payroll.PeriodTotals, error)
}

func (f *fakeTotalsRepository) WithTx(tx *sql.Tx) payroll.Repository { return f }

func (f *fakeTotalsRepository) UpsertResult(ctx context.Context, result *payroll.Result) error {
	return nil
}

func (f *fakeTotalsRepository) UpsertTotals(ctx context.Context, totals *payroll.PeriodTotals) error {
	return nil
}

func (f *fakeTotalsRepository) FindResultsByPeriod(ctx context.Context, branchID, periodID string) ([]payroll.Result, error) {
	return nil, nil
}

func (f *fakeTotalsRepository) FindTotalsByPeriod(ctx context.Context, branchID, periodID string) (*payroll.PeriodTotals, error) {
	if f.findTotalsByPeriodFn != nil {
		return f.findTotalsByPeriodFn(ctx, branchID, periodID)
	}
	return nil, gorm.ErrRecordNotFound
}

type fakePeriodRepository struct {
	findByIDAndBranchFn func(ctx context.Context, branchID, id string) (*period.Period, error)
}

func (f *fakePeriodRepository) WithTx(tx *sql.Tx) period.Repository { return f }

func (f *fakePeriodRepository) FindByIDAndBranch(ctx context.Context, branchID, id string) (*period.Period, error) {
	if f.findByIDAndBranchFn != nil {
		return f.findByIDAndBranchFn(ctx, branchID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePeriodRepository) FindAllByBranch(ctx context.Context, branchID string) ([]period.Period, error) {
	return nil, nil
}

func (f *fakePeriodRepository) UpdateState(ctx context.Context, id string, state string) error {
	return nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, branchID string, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func calculatedPeriod(branchID, periodID uuid.UUID) *period.Period {
	return &period.Period{
		ID:       periodID,
		BranchID: branchID,
		Month:    3,
		Year:     2026,
		State:    period.StateCalculated,
	}
}

func TestProformaService_Generate(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New()
	periodID := uuid.New()
	dir := t.TempDir()

	periodRepo := &fakePeriodRepository{
		findByIDAndBranchFn: func(ctx context.Context, bid, id string) (*period.Period, error) {
			return calculatedPeriod(branchID, periodID), nil
		},
	}
	totalsRepo := &fakeTotalsRepository{
		findTotalsByPeriodFn: func(ctx context.Context, bid, pid string) (*payroll.PeriodTotals, error) {
			return &payroll.PeriodTotals{
				PeriodID: periodID,
				BranchID: branchID,
				Detail: payroll.DetailMap{
					"BASE_SAL": dec("500.00"),
					"SSO":      dec("36.25"),
				},
				Net: dec("463.75"),
			}, nil
		},
	}

	svc := proforma.NewService(
		&fakeMappingRepository{},
		totalsRepo,
		periodRepo,
		&fakeCounterRepository{},
		proforma.NewWriter(dir),
	)

	resp, err := svc.Generate(ctx, branchID.String(), periodID.String())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.Sequence)
	assert.Equal(t, resp.TotalDebit, resp.TotalCredit)
	assert.NotEmpty(t, resp.Path)

	expectedPath := filepath.Join(dir, branchID.String(), "2026", "03", periodID.String()+".json")
	assert.Equal(t, expectedPath, resp.Path)

	raw, err := os.ReadFile(expectedPath)
	assert.NoError(t, err)
	var stored proforma.Proforma
	assert.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, periodID.String(), stored.PeriodID)
	assert.True(t, stored.TotalDebit.Equal(stored.TotalCredit))
}

func TestProformaService_Generate_DraftPeriodRejected(t *testing.T) {
	branchID := uuid.New()
	periodID := uuid.New()

	periodRepo := &fakePeriodRepository{
		findByIDAndBranchFn: func(ctx context.Context, bid, id string) (*period.Period, error) {
			p := calculatedPeriod(branchID, periodID)
			p.State = period.StateDraft
			return p, nil
		},
	}
	svc := proforma.NewService(
		&fakeMappingRepository{},
		&fakeTotalsRepository{},
		periodRepo,
		&fakeCounterRepository{},
		nil,
	)

	_, err := svc.Generate(context.Background(), branchID.String(), periodID.String())

	assert.ErrorIs(t, err, proformaerrors.ErrPeriodNotCalculated)
}

func TestProformaService_Generate_MissingTotals(t *testing.T) {
	branchID := uuid.New()
	periodID := uuid.New()

	periodRepo := &fakePeriodRepository{
		findByIDAndBranchFn: func(ctx context.Context, bid, id string) (*period.Period, error) {
			return calculatedPeriod(branchID, periodID), nil
		},
	}
	svc := proforma.NewService(
		&fakeMappingRepository{},
		&fakeTotalsRepository{},
		periodRepo,
		&fakeCounterRepository{},
		nil,
	)

	_, err := svc.Generate(context.Background(), branchID.String(), periodID.String())

	assert.ErrorIs(t, err, proformaerrors.ErrTotalsNotFound)
}

func TestProformaService_Generate_MissingPeriod(t *testing.T) {
	svc := proforma.NewService(
		&fakeMappingRepository{},
		&fakeTotalsRepository{},
		&fakePeriodRepository{},
		&fakeCounterRepository{},
		nil,
	)

	_, err := svc.Generate(context.Background(), uuid.New().String(), uuid.New().String())

	assert.ErrorIs(t, err, payrollerrors.ErrPeriodNotFound)
}
