package entry

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CodeNet adalah earning sintetis yang ditulis engine setelah perhitungan,
// agar alur pembayaran/ekspor bisa membaca net pay seperti entry biasa.
const CodeNet = "NET"

type Entry struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PeriodID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_entry_period_employee_code"`
	BranchID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index:idx_entry_period_employee_code"`
	Code       string          `gorm:"type:varchar(40);not null;index:idx_entry_period_employee_code"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Quantity   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:1"`
	CostCenter string          `gorm:"type:varchar(60)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Entry) TableName() string {
	return "payroll_entries"
}
