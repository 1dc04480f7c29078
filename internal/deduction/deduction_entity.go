package deduction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Kind utang karyawan yang dicicil lewat payroll.
const (
	KindLoan        = "LOAN"
	KindAdvance     = "ADVANCE"
	KindGarnishment = "GARNISHMENT"
	KindOther       = "OTHER"
)

// ContractualDeduction adalah utang kontraktual satu karyawan. Saldo turun
// setiap periode sebesar alokasi waterfall; nonaktif otomatis saat saldo 0.
type ContractualDeduction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_deduction_branch_active"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind        string          `gorm:"type:varchar(20);not null;default:'OTHER'"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Balance     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Installment decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Priority    int             `gorm:"not null;default:1"`
	Active      bool            `gorm:"not null;default:true;index:idx_deduction_branch_active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ContractualDeduction) TableName() string {
	return "contractual_deductions"
}

// Allocation mencatat berapa yang diambil satu run untuk satu deduction,
// sehingga perhitungan ulang bisa mengembalikan saldo run sebelumnya dulu.
type Allocation struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PeriodID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_allocation_period_deduction"`
	DeductionID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_allocation_period_deduction"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt   time.Time
}

func (Allocation) TableName() string {
	return "payroll_allocations"
}
