package deduction_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Pachosan13/7granos-app-sub000/internal/deduction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeDeductionRepository struct {
	createFn         func(ctx context.Context, d *deduction.ContractualDeduction) error
	findByEmployeeFn func(ctx context.Context, branchID, employeeID string) ([]deduction.ContractualDeduction, error)
}

func (f *fakeDeductionRepository) WithTx(tx *sql.Tx) deduction.Repository { return f }

func (f *fakeDeductionRepository) Create(ctx context.Context, d *deduction.ContractualDeduction) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDeductionRepository) FindByEmployee(ctx context.Context, branchID, employeeID string) ([]deduction.ContractualDeduction, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, branchID, employeeID)
	}
	return nil, nil
}

func (f *fakeDeductionRepository) FindActiveByBranch(ctx context.Context, branchID string) ([]deduction.ContractualDeduction, error) {
	return nil, nil
}

func (f *fakeDeductionRepository) FindAllByBranch(ctx context.Context, branchID string) ([]deduction.ContractualDeduction, error) {
	return nil, nil
}

func (f *fakeDeductionRepository) FindAllocationsByPeriod(ctx context.Context, periodID string) ([]deduction.Allocation, error) {
	return nil, nil
}

func (f *fakeDeductionRepository) SaveBalance(ctx context.Context, id string, balance decimal.Decimal, active bool) error {
	return nil
}

func (f *fakeDeductionRepository) DeleteAllocationsByPeriod(ctx context.Context, periodID string) error {
	return nil
}

func (f *fakeDeductionRepository) InsertAllocation(ctx context.Context, a *deduction.Allocation) error {
	return nil
}

func TestDeductionService_Create(t *testing.T) {
	ctx := context.Background()
	branchID := uuid.New().String()
	employeeID := uuid.New().String()

	repo := &fakeDeductionRepository{
		createFn: func(ctx context.Context, d *deduction.ContractualDeduction) error {
			d.ID = uuid.New()
			return nil
		},
	}
	svc := deduction.NewService(repo)

	resp, err := svc.Create(ctx, branchID, deduction.CreateDeductionRequest{
		EmployeeID:  employeeID,
		Kind:        deduction.KindLoan,
		TotalAmount: "600.00",
		Installment: "50.00",
		Priority:    1,
	})

	assert.NoError(t, err)
	assert.Equal(t, "600.00", resp.TotalAmount)
	// saldo awal = total utang
	assert.Equal(t, "600.00", resp.Balance)
	assert.True(t, resp.Active)
}

func TestDeductionService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc := deduction.NewService(&fakeDeductionRepository{})
	branchID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("invalid branch id", func(t *testing.T) {
		_, err := svc.Create(ctx, "not-a-uuid", deduction.CreateDeductionRequest{
			EmployeeID: employeeID, Kind: deduction.KindLoan, TotalAmount: "100", Installment: "10", Priority: 1,
		})
		assert.ErrorIs(t, err, deduction.ErrInvalidBranchID)
	})

	t.Run("negative total", func(t *testing.T) {
		_, err := svc.Create(ctx, branchID, deduction.CreateDeductionRequest{
			EmployeeID: employeeID, Kind: deduction.KindLoan, TotalAmount: "-100", Installment: "10", Priority: 1,
		})
		assert.ErrorIs(t, err, deduction.ErrInvalidAmount)
	})

	t.Run("unparseable installment", func(t *testing.T) {
		_, err := svc.Create(ctx, branchID, deduction.CreateDeductionRequest{
			EmployeeID: employeeID, Kind: deduction.KindLoan, TotalAmount: "100", Installment: "ten", Priority: 1,
		})
		assert.ErrorIs(t, err, deduction.ErrInvalidAmount)
	})
}
