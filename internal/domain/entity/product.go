package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry of the sugar warehouse. KgPerBao is the
// per-product bag-to-kilogram conversion factor; movements freeze it at write
// time, so changing it here never rewrites history.
type Product struct {
	ID        string
	Name      string          // display name, unique within the catalog
	Group     string          // category label, e.g. "Đường cát", "Phèn"
	KgPerBao  decimal.Decimal // must be positive for balance reporting
	CreatedAt time.Time
	UpdatedAt time.Time
}
