package paycode

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=paycode_repo.go -destination=mock/paycode_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, code *PayCode) error
	FindAll(ctx context.Context) ([]PayCode, error)
	FindByCode(ctx context.Context, code string) (*PayCode, error)
	Update(ctx context.Context, code *PayCode) error
	Delete(ctx context.Context, code string) error
	// Catalog mengembalikan seluruh katalog sebagai map code -> PayCode
	// untuk lookup O(1) selama perhitungan payroll.
	Catalog(ctx context.Context) (map[string]PayCode, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, code *PayCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *repository) FindAll(ctx context.Context) ([]PayCode, error) {
	var codes []PayCode
	err := r.db.WithContext(ctx).Order("code ASC").Find(&codes).Error
	return codes, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*PayCode, error) {
	var pc PayCode
	err := r.db.WithContext(ctx).First(&pc, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *repository) Update(ctx context.Context, code *PayCode) error {
	return r.db.WithContext(ctx).Save(code).Error
}

func (r *repository) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Delete(&PayCode{}, "code = ?", code).Error
}

func (r *repository) Catalog(ctx context.Context) (map[string]PayCode, error) {
	codes, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]PayCode, len(codes))
	for _, c := range codes {
		catalog[c.Code] = c
	}
	return catalog, nil
}
