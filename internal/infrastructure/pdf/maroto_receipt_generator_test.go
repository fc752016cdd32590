package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/foodhub/internal/application/checkout"
	"github.com/jhoicas/foodhub/internal/domain/entity"
	"github.com/jhoicas/foodhub/internal/infrastructure/pdf"
)

func TestGenerateReceiptPDF(t *testing.T) {
	receipt := entity.Receipt{
		Number: "0003",
		Lines: []entity.OrderLine{
			{Course: entity.CourseStarters, Item: entity.MenuItem{ID: "s1", Name: "Garlic Bread", Price: decimal.NewFromInt(65)}},
			{Course: entity.CourseDesserts, Item: entity.MenuItem{ID: "d2", Name: "Ice Cream", Price: decimal.NewFromInt(79)}},
		},
		Total:       decimal.NewFromInt(144),
		Message:     "Payment of R144 confirmed! Thank you.",
		ConfirmedAt: time.Date(2026, 5, 4, 19, 30, 0, 0, time.UTC),
	}

	out, err := pdf.NewMarotoReceiptGenerator().GenerateReceiptPDF(
		context.Background(),
		checkout.ReceiptHeader{RestaurantName: "FoodHub", CurrencySymbol: "R"},
		receipt,
	)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}
