package deduction

import (
	"context"
	"database/sql"

	"github.com/Pachosan13/7granos-app-sub000/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=deduction_repo.go -destination=mock/deduction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *ContractualDeduction) error
	FindByEmployee(ctx context.Context, branchID, employeeID string) ([]ContractualDeduction, error)
	// FindActiveByBranch mengembalikan deduction aktif berurut priority naik
	// (priority lebih kecil = didahulukan), lalu id agar urutannya stabil.
	FindActiveByBranch(ctx context.Context, branchID string) ([]ContractualDeduction, error)
	// FindAllByBranch menyertakan yang nonaktif; dipakai engine untuk
	// mengembalikan alokasi run sebelumnya sebelum menghitung ulang.
	FindAllByBranch(ctx context.Context, branchID string) ([]ContractualDeduction, error)
	FindAllocationsByPeriod(ctx context.Context, periodID string) ([]Allocation, error)

	// Bagian transaksi run: saldo ditulis absolut, alokasi periode diganti
	// seluruhnya.
	SaveBalance(ctx context.Context, id string, balance decimal.Decimal, active bool) error
	DeleteAllocationsByPeriod(ctx context.Context, periodID string) error
	InsertAllocation(ctx context.Context, a *Allocation) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, d *ContractualDeduction) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindByEmployee(ctx context.Context, branchID, employeeID string) ([]ContractualDeduction, error) {
	var deductions []ContractualDeduction
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(branchID)).
		Where("employee_id = ?", employeeID).
		Order("priority ASC, id ASC").
		Find(&deductions).Error
	return deductions, err
}

func (r *repository) FindActiveByBranch(ctx context.Context, branchID string) ([]ContractualDeduction, error) {
	var deductions []ContractualDeduction
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(branchID)).
		Where("active = ?", true).
		Order("priority ASC, id ASC").
		Find(&deductions).Error
	return deductions, err
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID string) ([]ContractualDeduction, error) {
	var deductions []ContractualDeduction
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(branchID)).
		Order("priority ASC, id ASC").
		Find(&deductions).Error
	return deductions, err
}

func (r *repository) FindAllocationsByPeriod(ctx context.Context, periodID string) ([]Allocation, error) {
	var allocations []Allocation
	err := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Find(&allocations).Error
	return allocations, err
}

func (r *repository) SaveBalance(ctx context.Context, id string, balance decimal.Decimal, active bool) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`UPDATE contractual_deductions SET balance = $1, active = $2, updated_at = now() WHERE id = $3`,
			balance, active, id,
		)
		return err
	}
	return r.db.WithContext(ctx).
		Model(&ContractualDeduction{}).
		Where("id = ?", id).
		Updates(map[string]any{"balance": balance, "active": active}).Error
}

func (r *repository) DeleteAllocationsByPeriod(ctx context.Context, periodID string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`DELETE FROM payroll_allocations WHERE period_id = $1`,
			periodID,
		)
		return err
	}
	return r.db.WithContext(ctx).
		Delete(&Allocation{}, "period_id = ?", periodID).Error
}

func (r *repository) InsertAllocation(ctx context.Context, a *Allocation) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`INSERT INTO payroll_allocations (period_id, deduction_id, employee_id, amount)
			 VALUES ($1, $2, $3, $4)`,
			a.PeriodID, a.DeductionID, a.EmployeeID, a.Amount,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(a).Error
}
