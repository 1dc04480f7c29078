package payroll

import (
	"context"
	"database/sql"

	"github.com/Pachosan13/7granos-app-sub000/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	UpsertResult(ctx context.Context, result *Result) error
	UpsertTotals(ctx context.Context, totals *PeriodTotals) error
	FindResultsByPeriod(ctx context.Context, branchID, periodID string) ([]Result, error)
	FindTotalsByPeriod(ctx context.Context, branchID, periodID string) (*PeriodTotals, error)
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

const upsertResultQuery = `
INSERT INTO payroll_results (
	period_id, branch_id, employee_id,
	gross, legal_deductions_total, contractual_deductions_total, net,
	detail, employer_social_insurance_a, employer_social_insurance_b, total_labor_cost
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (period_id, employee_id) DO UPDATE SET
	gross = EXCLUDED.gross,
	legal_deductions_total = EXCLUDED.legal_deductions_total,
	contractual_deductions_total = EXCLUDED.contractual_deductions_total,
	net = EXCLUDED.net,
	detail = EXCLUDED.detail,
	employer_social_insurance_a = EXCLUDED.employer_social_insurance_a,
	employer_social_insurance_b = EXCLUDED.employer_social_insurance_b,
	total_labor_cost = EXCLUDED.total_labor_cost,
	updated_at = now()
`

func (r *repository) UpsertResult(ctx context.Context, result *Result) error {
	detail, err := result.Detail.Value()
	if err != nil {
		return err
	}

	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, upsertResultQuery,
			result.PeriodID, result.BranchID, result.EmployeeID,
			result.Gross, result.LegalTotal, result.ContractualTotal, result.Net,
			detail, result.EmployerPension, result.EmployerEducation, result.TotalLaborCost,
		)
		return err
	}

	return r.db.WithContext(ctx).Exec(upsertResultQuery,
		result.PeriodID, result.BranchID, result.EmployeeID,
		result.Gross, result.LegalTotal, result.ContractualTotal, result.Net,
		detail, result.EmployerPension, result.EmployerEducation, result.TotalLaborCost,
	).Error
}

const upsertTotalsQuery = `
INSERT INTO payroll_period_totals (
	period_id, branch_id, employees_processed,
	gross, legal_deductions_total, contractual_deductions_total, net,
	employer_social_insurance_a, employer_social_insurance_b, total_labor_cost, detail
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (period_id) DO UPDATE SET
	employees_processed = EXCLUDED.employees_processed,
	gross = EXCLUDED.gross,
	legal_deductions_total = EXCLUDED.legal_deductions_total,
	contractual_deductions_total = EXCLUDED.contractual_deductions_total,
	net = EXCLUDED.net,
	employer_social_insurance_a = EXCLUDED.employer_social_insurance_a,
	employer_social_insurance_b = EXCLUDED.employer_social_insurance_b,
	total_labor_cost = EXCLUDED.total_labor_cost,
	detail = EXCLUDED.detail,
	updated_at = now()
`

func (r *repository) UpsertTotals(ctx context.Context, totals *PeriodTotals) error {
	detail, err := totals.Detail.Value()
	if err != nil {
		return err
	}

	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, upsertTotalsQuery,
			totals.PeriodID, totals.BranchID, totals.EmployeesProcessed,
			totals.Gross, totals.LegalTotal, totals.ContractualTotal, totals.Net,
			totals.EmployerPension, totals.EmployerEducation, totals.TotalLaborCost, detail,
		)
		return err
	}

	return r.db.WithContext(ctx).Exec(upsertTotalsQuery,
		totals.PeriodID, totals.BranchID, totals.EmployeesProcessed,
		totals.Gross, totals.LegalTotal, totals.ContractualTotal, totals.Net,
		totals.EmployerPension, totals.EmployerEducation, totals.TotalLaborCost, detail,
	).Error
}

func (r *repository) FindResultsByPeriod(ctx context.Context, branchID, periodID string) ([]Result, error) {
	var results []Result
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(branchID)).
		Where("period_id = ?", periodID).
		Order("employee_id ASC").
		Find(&results).Error
	return results, err
}

func (r *repository) FindTotalsByPeriod(ctx context.Context, branchID, periodID string) (*PeriodTotals, error) {
	var totals PeriodTotals
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(branchID)).
		Where("period_id = ?", periodID).
		First(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
