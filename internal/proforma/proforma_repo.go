package proforma

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=proforma_repo.go -destination=mock/proforma_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, m *AccountMapping) error
	FindAll(ctx context.Context) ([]AccountMapping, error)
	Chart(ctx context.Context) (map[string]AccountMapping, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *AccountMapping) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindAll(ctx context.Context) ([]AccountMapping, error) {
	var mappings []AccountMapping
	err := r.db.WithContext(ctx).Order("code ASC").Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

// Chart mengembalikan seluruh mapping keyed kode untuk lookup O(1) di builder.
func (r *repository) Chart(ctx context.Context) (map[string]AccountMapping, error) {
	mappings, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	chart := make(map[string]AccountMapping, len(mappings))
	for _, m := range mappings {
		chart[m.Code] = m
	}
	return chart, nil
}
