package period

import (
	"time"

	"github.com/google/uuid"
)

const (
	FrequencyBiweekly = "BIWEEKLY"
	FrequencyMonthly  = "MONTHLY"
)

// Period state berjalan maju saja: DRAFT -> CALCULATED -> APPROVED -> PAID.
// Engine payroll hanya melakukan transisi pertama dan boleh dihitung ulang
// selama masih CALCULATED.
const (
	StateDraft      = "DRAFT"
	StateCalculated = "CALCULATED"
	StateApproved   = "APPROVED"
	StatePaid       = "PAID"
)

type Period struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_period_branch_state"`
	Month     int        `gorm:"not null"`
	Year      int        `gorm:"not null"`
	StartDate time.Time  `gorm:"type:date;not null"`
	EndDate   time.Time  `gorm:"type:date;not null"`
	Frequency string     `gorm:"type:varchar(20);not null;default:'BIWEEKLY'"`
	State     string     `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_period_branch_state"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Period) TableName() string {
	return "pay_periods"
}

// PeriodsPerYear dipakai untuk anualisasi basis pajak.
func (p Period) PeriodsPerYear() int64 {
	if p.Frequency == FrequencyMonthly {
		return 12
	}
	return 24
}

var stateOrder = map[string]int{
	StateDraft:      0,
	StateCalculated: 1,
	StateApproved:   2,
	StatePaid:       3,
}

// CanTransition mengizinkan maju satu langkah atau menetapkan ulang state
// yang sama (recalculate saat masih CALCULATED bersifat idempotent).
func CanTransition(from, to string) bool {
	fromOrd, ok := stateOrder[from]
	if !ok {
		return false
	}
	toOrd, ok := stateOrder[to]
	if !ok {
		return false
	}
	return toOrd == fromOrd || toOrd == fromOrd+1
}
