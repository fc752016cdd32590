package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/domain/entity"
)

// MenuItemResponse salida de un plato.
type MenuItemResponse struct {
	ID          string          `json:"id"`
	Course      string          `json:"course,omitempty"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	Selected    bool            `json:"selected"`
}

// EditBufferResponse borrador de edición activo.
type EditBufferResponse struct {
	Course      string `json:"course"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// NewItemBufferResponse borrador del plato en alta.
type NewItemBufferResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Course      string `json:"course"`
	Price       string `json:"price"`
}

// ReceiptResponse comprobante del último checkout.
type ReceiptResponse struct {
	Number      string             `json:"number"`
	Items       []MenuItemResponse `json:"items"`
	Total       decimal.Decimal    `json:"total"`
	Message     string             `json:"message"`
	ConfirmedAt time.Time          `json:"confirmed_at"`
}

// MenuResponse carta completa por curso.
type MenuResponse struct {
	Starters []MenuItemResponse `json:"starters"`
	Main     []MenuItemResponse `json:"main"`
	Desserts []MenuItemResponse `json:"desserts"`
}

// StateResponse foto completa del estado de la sesión, usada para re-renderizar.
type StateResponse struct {
	Page          string                `json:"page"`
	Role          string                `json:"role"`
	Filter        string                `json:"filter"`
	AllowedPages  []string              `json:"allowed_pages"`
	Menu          MenuResponse          `json:"menu"`
	Order         []MenuItemResponse    `json:"order"`
	OrderTotal    decimal.Decimal       `json:"order_total"`
	Editing       *EditBufferResponse   `json:"editing"`
	AddPanelOpen  bool                  `json:"add_panel_open"`
	NewItem       NewItemBufferResponse `json:"new_item"`
	Confirmation  string                `json:"confirmation"`
	LastReceipt   *ReceiptResponse      `json:"last_receipt,omitempty"`
	Averages      map[string]string     `json:"averages"`
	FilteredItems []MenuItemResponse    `json:"filtered_items"`
}

// FilteredItemsResponse vista filtrada de la carta.
type FilteredItemsResponse struct {
	Filter string             `json:"filter"`
	Count  int                `json:"count"`
	Items  []MenuItemResponse `json:"items"`
}

// SessionResponse sesión recién creada.
type SessionResponse struct {
	Token            string        `json:"token"`
	ExpiresInMinutes int           `json:"expires_in_minutes"`
	State            StateResponse `json:"state"`
}

// SetRoleRequest entrada para elegir rol ("client", "chef" o "" para volver a sin rol).
type SetRoleRequest struct {
	Role string `json:"role"`
}

// NavigateRequest entrada para cambiar de página.
type NavigateRequest struct {
	Page string `json:"page" validate:"required"`
}

// SetFilterRequest entrada para el filtro ("all" o un curso).
type SetFilterRequest struct {
	Filter string `json:"filter" validate:"required"`
}

// UpdateFieldRequest modifica un campo de un borrador.
type UpdateFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// NewStateResponse convierte la foto del modelo a su representación JSON.
func NewStateResponse(s menu.State) StateResponse {
	out := StateResponse{
		Page:         string(s.Page),
		Role:         string(s.Role),
		Filter:       string(s.Filter),
		AllowedPages: allowedPages(s.Role),
		Menu: MenuResponse{
			Starters: itemsResponse(s, entity.CourseStarters),
			Main:     itemsResponse(s, entity.CourseMain),
			Desserts: itemsResponse(s, entity.CourseDesserts),
		},
		Order:        linesResponse(s.Order),
		OrderTotal:   s.OrderTotal,
		AddPanelOpen: s.AddPanelOpen,
		NewItem: NewItemBufferResponse{
			Name:        s.NewItem.Name,
			Description: s.NewItem.Description,
			Course:      string(s.NewItem.Course),
			Price:       s.NewItem.Price,
		},
		Confirmation:  s.Confirmation,
		Averages:      make(map[string]string, len(s.Averages)),
		FilteredItems: NewFilteredItemsResponse(s).Items,
	}
	for c, avg := range s.Averages {
		out.Averages[string(c)] = avg
	}
	if s.Editing != nil {
		out.Editing = &EditBufferResponse{
			Course:      string(s.Editing.Course),
			ID:          s.Editing.ID,
			Name:        s.Editing.Name,
			Price:       s.Editing.Price,
			Description: s.Editing.Description,
		}
	}
	if s.LastReceipt != nil {
		out.LastReceipt = &ReceiptResponse{
			Number:      s.LastReceipt.Number,
			Items:       linesResponse(s.LastReceipt.Lines),
			Total:       s.LastReceipt.Total,
			Message:     s.LastReceipt.Message,
			ConfirmedAt: s.LastReceipt.ConfirmedAt,
		}
	}
	return out
}

// NewFilteredItemsResponse vista filtrada a partir de la foto del modelo.
func NewFilteredItemsResponse(s menu.State) FilteredItemsResponse {
	items := make([]MenuItemResponse, 0, len(s.FilteredItems))
	for _, ci := range s.FilteredItems {
		items = append(items, itemResponse(ci.Course, ci.MenuItem, s.IsSelected(ci.ID)))
	}
	return FilteredItemsResponse{Filter: string(s.Filter), Count: len(items), Items: items}
}

func itemsResponse(s menu.State, c entity.Course) []MenuItemResponse {
	items := s.Menu.Items(c)
	out := make([]MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, itemResponse(c, it, s.IsSelected(it.ID)))
	}
	return out
}

func linesResponse(lines []entity.OrderLine) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, itemResponse(l.Course, l.Item, true))
	}
	return out
}

func itemResponse(c entity.Course, it entity.MenuItem, selected bool) MenuItemResponse {
	return MenuItemResponse{
		ID:          it.ID,
		Course:      string(c),
		Name:        it.Name,
		Price:       it.Price,
		Description: it.Description,
		Image:       it.Image,
		Selected:    selected,
	}
}

func allowedPages(r entity.Role) []string {
	var out []string
	for _, p := range entity.AllPages() {
		if p.AllowedFor(r) {
			out = append(out, string(p))
		}
	}
	return out
}
