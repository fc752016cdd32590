package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/foodhub/internal/application/checkout"
	"github.com/jhoicas/foodhub/internal/application/dto"
	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/application/session"
)

// OrderHandler pedido, checkout y comprobante.
type OrderHandler struct {
	sessions *session.Manager
	receipts *checkout.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(sessions *session.Manager, receipts *checkout.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{sessions: sessions, receipts: receipts}
}

// Toggle godoc
// @Summary      Agregar o quitar un plato del pedido
// @Tags         order
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plato"
// @Success      200  {object}  dto.StateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/order/items/{id}/toggle [post]
func (h *OrderHandler) Toggle(c *fiber.Ctx) error {
	id := utils.CopyString(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	return respond(c, h.sessions, func(m *menu.Model) error {
		_, err := m.ToggleOrderItem(id)
		return err
	})
}

// Checkout godoc
// @Summary      Confirmar y pagar
// @Description  Calcula el total, deja el mensaje de confirmación y vacía el pedido. Pedido vacío → 409.
// @Tags         order
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StateResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	return respond(c, h.sessions, func(m *menu.Model) error {
		_, err := m.ConfirmCheckout()
		return err
	})
}

// Receipt godoc
// @Summary      Descargar comprobante en PDF
// @Tags         order
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/checkout/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdf, filename, err := h.receipts.DownloadReceiptPDF(c.UserContext(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
