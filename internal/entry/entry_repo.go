package entry

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=entry_repo.go -destination=mock/entry_repo_mock.go -package=mock
type Repository interface {
	FindByPeriod(ctx context.Context, periodID string) ([]Entry, error)
	// UpsertNet menulis entry NET sintetis per karyawan, keyed
	// (period, employee, code). Menjalankan ulang engine menimpa, tidak
	// menduplikasi.
	UpsertNet(ctx context.Context, periodID, branchID, employeeID string, amount decimal.Decimal) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByPeriod(ctx context.Context, periodID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Order("employee_id ASC, code ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) UpsertNet(ctx context.Context, periodID, branchID, employeeID string, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&Entry{}).
		Where("period_id = ? AND employee_id = ? AND code = ?", periodID, employeeID, CodeNet).
		Updates(map[string]any{"amount": amount, "quantity": decimal.NewFromInt(1)})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	periodUUID, err := uuid.Parse(periodID)
	if err != nil {
		return err
	}
	branchUUID, err := uuid.Parse(branchID)
	if err != nil {
		return err
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&Entry{
		PeriodID:   periodUUID,
		BranchID:   branchUUID,
		EmployeeID: employeeUUID,
		Code:       CodeNet,
		Amount:     amount,
		Quantity:   decimal.NewFromInt(1),
	}).Error
}
