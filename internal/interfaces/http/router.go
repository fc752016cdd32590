package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/foodhub/internal/application/checkout"
	"github.com/jhoicas/foodhub/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions          *session.Manager
	Receipts          *checkout.ReceiptUseCase
	SessionSecret     string
	SessionIssuer     string
	SessionTTLMinutes int
	Log               zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Log))

	// Sesiones (público: crear devuelve el token)
	tokens := SessionTokenConfig{
		Secret:     deps.SessionSecret,
		Issuer:     deps.SessionIssuer,
		ExpMinutes: deps.SessionTTLMinutes,
	}
	sessionHandler := NewSessionHandler(deps.Sessions, tokens)
	api.Post("/sessions", sessionHandler.Create)

	// Rutas de sesión (requieren Bearer Token)
	protected := api.Group("/", SessionMiddleware(tokens))
	protected.Get("/state", sessionHandler.State)
	protected.Delete("/sessions/current", sessionHandler.End)

	// Rol, página y filtro
	navHandler := NewNavigationHandler(deps.Sessions)
	protected.Put("/state/role", navHandler.SetRole)
	protected.Put("/state/page", navHandler.Navigate)
	protected.Put("/state/filter", navHandler.SetFilter)
	protected.Get("/menu/items", navHandler.FilteredItems)
	protected.Get("/menu/averages", navHandler.Averages)

	// Pedido y checkout
	orderHandler := NewOrderHandler(deps.Sessions, deps.Receipts)
	protected.Post("/order/items/:id/toggle", orderHandler.Toggle)
	protected.Post("/checkout", orderHandler.Checkout)
	protected.Get("/checkout/receipt", orderHandler.Receipt)

	// Herramientas del chef (las guardas de rol las aplica el modelo)
	chefHandler := NewChefHandler(deps.Sessions)
	protected.Post("/menu/:course/:id/edit", chefHandler.StartEdit)
	protected.Delete("/menu/:course/:id", chefHandler.Remove)
	protected.Patch("/edit", chefHandler.UpdateEdit)
	protected.Post("/edit/save", chefHandler.SaveEdit)
	protected.Delete("/edit", chefHandler.CancelEdit)
	protected.Post("/add-panel/open", chefHandler.OpenAddPanel)
	protected.Post("/add-panel/close", chefHandler.CloseAddPanel)
	protected.Patch("/add-panel", chefHandler.UpdateNewItem)
	protected.Post("/add-panel/submit", chefHandler.SubmitNewItem)
}
