package payroll

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kode detail yang ditulis engine di samping kode earning mentah.
const (
	DetailSocialSecurity     = "SSO"
	DetailEducationInsurance = "SEDU"
	DetailIncomeTax          = "ISR"
	DetailDeductionPrefix    = "DED_"
)

// DetailMap disimpan sebagai JSONB: kode -> jumlah.
type DetailMap map[string]decimal.Decimal

func (m DetailMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *DetailMap) Scan(value any) error {
	if value == nil {
		*m = DetailMap{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported detail map source type")
	}
	return json.Unmarshal(raw, m)
}

// Add mengakumulasi jumlah pada satu kode, mengabaikan nol agar map tetap
// ringkas.
func (m DetailMap) Add(code string, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	m[code] = m[code].Add(amount)
}

// Result adalah hasil perhitungan satu karyawan untuk satu periode,
// di-upsert keyed (period, employee).
type Result struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PeriodID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_result_period_employee"`
	BranchID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_result_period_employee"`
	Gross              decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	LegalTotal         decimal.Decimal `gorm:"column:legal_deductions_total;type:numeric(14,2);not null;default:0"`
	ContractualTotal   decimal.Decimal `gorm:"column:contractual_deductions_total;type:numeric(14,2);not null;default:0"`
	Net                decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Detail             DetailMap       `gorm:"type:jsonb;not null;default:'{}'"`
	EmployerPension    decimal.Decimal `gorm:"column:employer_social_insurance_a;type:numeric(14,2);not null;default:0"`
	EmployerEducation  decimal.Decimal `gorm:"column:employer_social_insurance_b;type:numeric(14,2);not null;default:0"`
	TotalLaborCost     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Result) TableName() string {
	return "payroll_results"
}

// PeriodTotals dihitung ulang penuh setiap run.
type PeriodTotals struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PeriodID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_totals_period"`
	BranchID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeesProcessed int             `gorm:"not null;default:0"`
	Gross              decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	LegalTotal         decimal.Decimal `gorm:"column:legal_deductions_total;type:numeric(14,2);not null;default:0"`
	ContractualTotal   decimal.Decimal `gorm:"column:contractual_deductions_total;type:numeric(14,2);not null;default:0"`
	Net                decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EmployerPension    decimal.Decimal `gorm:"column:employer_social_insurance_a;type:numeric(14,2);not null;default:0"`
	EmployerEducation  decimal.Decimal `gorm:"column:employer_social_insurance_b;type:numeric(14,2);not null;default:0"`
	TotalLaborCost     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Detail             DetailMap       `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (PeriodTotals) TableName() string {
	return "payroll_period_totals"
}
