package paycode

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class menentukan apakah sebuah kode masuk perhitungan gross atau tidak.
const (
	ClassEarning   = "EARNING"
	ClassDeduction = "DEDUCTION"
	ClassInfo      = "INFO"
)

// Category adalah klasifikasi eksplisit untuk agregasi earnings, pengganti
// pencocokan string kode mentah di alur perhitungan.
const (
	CategoryRegular    = "REGULAR"
	CategoryOvertime   = "OVERTIME"
	CategoryTips       = "TIPS"
	CategoryThirteenth = "THIRTEENTH"
	CategoryOther      = "OTHER"
)

// OvertimeKind hanya berlaku untuk CategoryOvertime.
const (
	OvertimeNone           = "NONE"
	OvertimeDaytime        = "DAYTIME"
	OvertimeNight          = "NIGHT"
	OvertimeRestHoliday    = "REST_HOLIDAY"
	OvertimeProlongedNight = "PROLONGED_NIGHT"
)

type PayCode struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code         string         `gorm:"type:varchar(40);not null;uniqueIndex:uq_paycode_code"`
	Name         string         `gorm:"type:varchar(150);not null"`
	Class        string         `gorm:"type:varchar(20);not null;default:'EARNING'"`
	Category     string         `gorm:"type:varchar(20);not null;default:'OTHER'"`
	OvertimeKind string         `gorm:"type:varchar(20);not null;default:'NONE'"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (PayCode) TableName() string {
	return "pay_codes"
}

func (p PayCode) IsEarning() bool {
	return p.Class == ClassEarning
}
