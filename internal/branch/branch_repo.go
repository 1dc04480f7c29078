package branch

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=branch_repo.go -destination=mock/branch_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Branch, error)
	// GetConfig mengembalikan config sucursal; jika belum ada, dibuat dengan
	// default aman (tips keluar dari seguro social, masuk ke income tax).
	GetConfig(ctx context.Context, branchID string) (*Config, error)
	SaveConfig(ctx context.Context, cfg *Config) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Branch, error) {
	var b Branch
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetConfig(ctx context.Context, branchID string) (*Config, error) {
	var cfg Config
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		First(&cfg).Error
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	branchUUID, parseErr := uuid.Parse(branchID)
	if parseErr != nil {
		return nil, parseErr
	}

	cfg = Config{
		BranchID:                    branchUUID,
		IncludeTipsInSocialSecurity: false,
		IncludeTipsInIncomeTax:      true,
	}
	if err := r.db.WithContext(ctx).Create(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) SaveConfig(ctx context.Context, cfg *Config) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}
