// Package checkout genera el comprobante del último checkout de una sesión.
package checkout

import (
	"context"
	"fmt"

	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/domain"
	"github.com/jhoicas/foodhub/internal/domain/entity"
)

// SessionReader contrato mínimo sobre el gestor de sesiones (lo cumple *session.Manager).
type SessionReader interface {
	View(id string, fn func(m *menu.Model)) error
}

// ReceiptUseCase descarga del comprobante en PDF.
type ReceiptUseCase struct {
	sessions  SessionReader
	generator ReceiptPDFGenerator
	header    ReceiptHeader
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(sessions SessionReader, generator ReceiptPDFGenerator, header ReceiptHeader) *ReceiptUseCase {
	return &ReceiptUseCase{sessions: sessions, generator: generator, header: header}
}

// DownloadReceiptPDF genera el PDF del último checkout confirmado de la sesión.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la sesión no existe o aún no hay checkout.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, sessionID string) ([]byte, string, error) {
	var (
		receipt entity.Receipt
		ok      bool
	)
	if err := uc.sessions.View(sessionID, func(m *menu.Model) { receipt, ok = m.LastReceipt() }); err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", fmt.Errorf("%w: la sesión no tiene checkout confirmado", domain.ErrNotFound)
	}
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, uc.header, receipt)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generar pdf: %w", err)
	}
	return pdf, fmt.Sprintf("receipt-%s.pdf", receipt.Number), nil
}
