package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID        string
	Date      time.Time
	Name      string
	Quantity  *int
	Cost      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
