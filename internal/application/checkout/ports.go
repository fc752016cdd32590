package checkout

import (
	"context"

	"github.com/jhoicas/foodhub/internal/domain/entity"
)

// ReceiptHeader datos fijos del restaurante impresos en el comprobante.
type ReceiptHeader struct {
	RestaurantName string
	CurrencySymbol string
}

// ReceiptPDFGenerator puerto de salida para renderizar un comprobante en PDF.
// Implementado en infrastructure/pdf con Maroto v2.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, header ReceiptHeader, receipt entity.Receipt) ([]byte, error)
}
