// Package menu contiene los servicios de dominio de precios de la carta:
// promedio por curso, totales y las dos políticas de lectura de precios.
package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/foodhub/internal/domain"
	"github.com/jhoicas/foodhub/internal/domain/entity"
)

// Average media aritmética de los precios con dos decimales. "0.00" si no hay platos.
// Ej: [65, 78] → "71.50".
func Average(items []entity.MenuItem) string {
	if len(items) == 0 {
		return decimal.Zero.StringFixed(2)
	}
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price)
	}
	return sum.Div(decimal.NewFromInt(int64(len(items)))).StringFixed(2)
}

// Total suma de los precios de las líneas de pedido.
func Total(lines []entity.OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Item.Price)
	}
	return total
}

// ParseEditPrice política de la edición: vacío, ilegible o negativo → 0.
func ParseEditPrice(text string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseNewPrice política del alta: el texto debe ser un número no negativo.
// Más estricta que ParseEditPrice a propósito; nunca cae a 0.
func ParseNewPrice(text string) (decimal.Decimal, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return decimal.Zero, fmt.Errorf("%w: precio requerido", domain.ErrInvalidInput)
	}
	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: precio %q no es numérico", domain.ErrInvalidInput, text)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	return d, nil
}

// FormatPrice antepone el símbolo de moneda a la representación decimal mínima.
// Ej: ("R", 71.5) → "R71.5", ("R", 143) → "R143".
func FormatPrice(symbol string, price decimal.Decimal) string {
	return symbol + price.String()
}
