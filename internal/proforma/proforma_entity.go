package proforma

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sisi akun pada chart of accounts.
const (
	SideDebit  = "DEBIT"
	SideCredit = "CREDIT"
)

// Kode sintetis yang dipakai builder di luar kode detail payroll.
const (
	CodeNetPayable         = "NET"
	CodeEmployerPension    = "ER_SSO"
	CodeEmployerPensionL   = "ER_SSO_LIAB"
	CodeEmployerEducation  = "ER_SEDU"
	CodeEmployerEducationL = "ER_SEDU_LIAB"
	CodeRounding           = "ROUNDING"
)

// AccountMapping memetakan satu kode payroll ke satu akun ledger plus sisinya.
type AccountMapping struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_account_mapping_code"`
	Account     string    `gorm:"type:varchar(20);not null"`
	AccountName string    `gorm:"type:varchar(100);not null"`
	Side        string    `gorm:"type:varchar(10);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (AccountMapping) TableName() string {
	return "account_mappings"
}

// Line adalah satu baris debit/credit pada artifact.
type Line struct {
	Code        string          `json:"code"`
	Account     string          `json:"account"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Proforma adalah artifact ledger seimbang hasil satu periode, belum diposting.
type Proforma struct {
	BranchID    string          `json:"branch_id"`
	PeriodID    string          `json:"period_id"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Sequence    int64           `json:"sequence"`
	Lines       []Line          `json:"lines"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	GeneratedAt time.Time       `json:"generated_at"`
}
