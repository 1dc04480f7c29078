package period

import (
	"context"
	"database/sql"

	"github.com/Pachosan13/7granos-app-sub000/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=period_repo.go -destination=mock/period_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByIDAndBranch(ctx context.Context, branchID, id string) (*Period, error)
	FindAllByBranch(ctx context.Context, branchID string) ([]Period, error)
	UpdateState(ctx context.Context, id string, state string) error
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

func (r *repository) FindByIDAndBranch(ctx context.Context, branchID, id string) (*Period, error) {
	var p Period
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(branchID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID string) ([]Period, error) {
	var periods []Period
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(branchID)).
		Order("start_date DESC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) UpdateState(ctx context.Context, id string, state string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`UPDATE pay_periods SET state = $1, updated_at = now() WHERE id = $2`,
			state, id,
		)
		return err
	}
	return r.db.WithContext(ctx).
		Model(&Period{}).
		Where("id = ?", id).
		Update("state", state).Error
}
