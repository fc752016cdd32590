package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt comprobante de un checkout confirmado. No implica pago real.
type Receipt struct {
	Number      string
	Lines       []OrderLine
	Total       decimal.Decimal
	Message     string // mensaje de confirmación mostrado al cliente
	ConfirmedAt time.Time
}
