package branch

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Branch struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(150);not null"`
	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Branch) TableName() string {
	return "branches"
}

// Config menentukan apakah propina (tips) masuk ke basis seguro social
// dan basis impuesto sobre la renta untuk satu sucursal.
type Config struct {
	ID                          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID                    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_branch_config"`
	IncludeTipsInSocialSecurity bool      `gorm:"not null;default:false"`
	IncludeTipsInIncomeTax      bool      `gorm:"not null;default:true"`
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

func (Config) TableName() string {
	return "branch_configs"
}
