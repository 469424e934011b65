package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	Name       string          `gorm:"not null"`
	Salary     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Department *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
