package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"pastelaria/catalog"
	"pastelaria/domain"
	"pastelaria/storefront-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const SessionHeader = "X-Session-ID"

type Handler struct {
	Menu     service.MenuServiceInterface
	Cart     service.CartServiceInterface
	Checkout service.CheckoutServiceInterface
}

func NewHandler(menu service.MenuServiceInterface, cart service.CartServiceInterface, checkout service.CheckoutServiceInterface) *Handler {
	return &Handler{
		Menu:     menu,
		Cart:     cart,
		Checkout: checkout,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/settings", h.getSettings).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{name}", h.changeQuantity).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{name}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/checkout/customer", h.getCustomer).Methods("GET")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

// sessionID reads the caller's session, minting one when absent. The id is
// always echoed back so the client can keep it.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(SessionHeader, id)
	return id
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	filter := catalog.Filter{
		Text:     r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	items, err := h.Menu.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Menu.Categories())
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Menu.Settings(r.Context()))
}

type cartResponse struct {
	Items []domain.CartLine `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

func newCartResponse(cart domain.Cart) cartResponse {
	resp := cartResponse{Items: cart.Lines, Total: cart.Total()}
	if resp.Items == nil {
		resp.Items = []domain.CartLine{}
	}
	for _, line := range resp.Items {
		resp.Count += line.Quantity
	}
	return resp
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Cart.Get(r.Context(), sessionID(w, r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(r.Context(), sessionID(w, r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(domain.Cart{}))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(w, r)

	var payload struct {
		MenuItemID  int64   `json:"menu_item_id"`
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
		Quantity    *int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := service.AddItemRequest{
		MenuItemID:  payload.MenuItemID,
		Name:        payload.Name,
		Price:       payload.Price,
		Description: payload.Description,
		Quantity:    1,
	}
	if payload.Quantity != nil {
		req.Quantity = *payload.Quantity
	}

	cart, err := h.Cart.AddItem(r.Context(), session, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *Handler) changeQuantity(w http.ResponseWriter, r *http.Request) {
	session := sessionID(w, r)

	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Cart.ChangeQuantity(r.Context(), session, mux.Vars(r)["name"], payload.Delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Cart.RemoveLine(r.Context(), sessionID(w, r), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Checkout.Customer(r.Context(), sessionID(w, r))
	if err != nil {
		writeError(w, err)
		return
	}
	if customer == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	session := sessionID(w, r)

	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Checkout.Checkout(r.Context(), session, customer)
	if err != nil {
		writeError(w, err)
		return
	}

	code := http.StatusCreated
	if !result.OrderSaved {
		code = http.StatusOK
	}
	writeJSON(w, code, result)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	png, err := h.Checkout.OrderQRCode(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
