package rules

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind seguro untuk SocialInsuranceRate.
const (
	InsurancePension   = "PENSION"
	InsuranceEducation = "EDUCATION"
)

// IncomeTaxBracket adalah satu lapisan tarif progresif tahunan.
// FixedAmount ditambahkan satu kali untuk setiap bracket yang berlaku.
type IncomeTaxBracket struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Min         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Max         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Rate        decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	FixedAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	ValidFrom   time.Time       `gorm:"type:date;not null;index"`
	ValidTo     *time.Time      `gorm:"type:date;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (IncomeTaxBracket) TableName() string {
	return "income_tax_brackets"
}

type SocialInsuranceRate struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind        string          `gorm:"type:varchar(20);not null;index"`
	EmployeePct decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	EmployerPct decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	ValidFrom   time.Time       `gorm:"type:date;not null;index"`
	ValidTo     *time.Time      `gorm:"type:date;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SocialInsuranceRate) TableName() string {
	return "social_insurance_rates"
}

type OvertimeRule struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind       string          `gorm:"type:varchar(20);not null;index"`
	Multiplier decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	ValidFrom  time.Time       `gorm:"type:date;not null;index"`
	ValidTo    *time.Time      `gorm:"type:date;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (OvertimeRule) TableName() string {
	return "overtime_rules"
}
