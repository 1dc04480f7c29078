package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee hanya referensi baca di service ini; master data karyawan
// dikelola aplikasi lain.
type Employee struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BranchID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	FullName  string         `gorm:"column:full_name;type:varchar(150);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
