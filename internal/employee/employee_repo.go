package employee

import (
	"context"

	"github.com/Pachosan13/7granos-app-sub000/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAllByBranch(ctx context.Context, branchID string) ([]Employee, error)
	// Names mengembalikan map employee id -> nama untuk melengkapi hasil
	// perhitungan payroll.
	Names(ctx context.Context, branchID string) (map[string]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllByBranch(ctx context.Context, branchID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(branchID)).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) Names(ctx context.Context, branchID string) (map[string]string, error) {
	employees, err := r.FindAllByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID.String()] = e.FullName
	}
	return names, nil
}
