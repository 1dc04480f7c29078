package rules

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rules_repo.go -destination=mock/rules_repo_mock.go -package=mock
type Repository interface {
	FindTaxBrackets(ctx context.Context, from, to time.Time) ([]IncomeTaxBracket, error)
	FindInsuranceRate(ctx context.Context, kind string, from, to time.Time) (*SocialInsuranceRate, error)
	FindOvertimeRules(ctx context.Context, from, to time.Time) ([]OvertimeRule, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// validity window overlaps [from, to]; valid_to NULL berarti masih berlaku.
func overlapping(from, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("valid_from <= ?", to).
			Where("valid_to IS NULL OR valid_to >= ?", from)
	}
}

func (r *repository) FindTaxBrackets(ctx context.Context, from, to time.Time) ([]IncomeTaxBracket, error) {
	var brackets []IncomeTaxBracket
	err := r.db.WithContext(ctx).
		Scopes(overlapping(from, to)).
		Order("min ASC").
		Find(&brackets).Error
	return brackets, err
}

func (r *repository) FindInsuranceRate(ctx context.Context, kind string, from, to time.Time) (*SocialInsuranceRate, error) {
	var rate SocialInsuranceRate
	err := r.db.WithContext(ctx).
		Scopes(overlapping(from, to)).
		Where("kind = ?", kind).
		Order("valid_from DESC").
		First(&rate).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *repository) FindOvertimeRules(ctx context.Context, from, to time.Time) ([]OvertimeRule, error) {
	var rules []OvertimeRule
	err := r.db.WithContext(ctx).
		Scopes(overlapping(from, to)).
		Find(&rules).Error
	return rules, err
}
