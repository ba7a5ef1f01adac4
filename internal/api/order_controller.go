package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NicolasCard/RAPZ/internal/geo"
	"github.com/NicolasCard/RAPZ/internal/models"
	"github.com/NicolasCard/RAPZ/internal/session"
	"github.com/NicolasCard/RAPZ/internal/store"
	"github.com/gorilla/mux"
	"github.com/lucsky/cuid"
)

// OrderController exposes the order lifecycle and the role-scoped views over
// HTTP. All state lives in the injected store; handlers only translate
// between JSON and store calls.
type OrderController struct {
	Config  *models.Config
	Store   *store.OrderStore
	Session *session.Session
}

func NewOrderController(cfg *models.Config, orderStore *store.OrderStore, sess *session.Session) *OrderController {
	return &OrderController{Config: cfg, Store: orderStore, Session: sess}
}

type createOrderRequest struct {
	DropoffAddress string  `json:"dropoff_address"`
	DistanceKm     float64 `json:"distance"`
	Price          float64 `json:"price"`
	EstimatedTime  int     `json:"estimated_time"`
}

// CreateOrder publishes a new delivery request for the session store. Only
// the store role may call it; the price and time are expected to come from a
// prior estimate.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if oc.Session.Role() != models.RoleStore {
		respondError(w, http.StatusForbidden, "apenas estabelecimentos podem criar entregas")
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if req.DropoffAddress == "" {
		respondError(w, http.StatusBadRequest, "endereço de entrega é obrigatório")
		return
	}
	if req.DistanceKm <= 0 {
		respondError(w, http.StatusBadRequest, "distância deve ser positiva")
		return
	}
	if req.Price < 0 || req.EstimatedTime < 0 {
		respondError(w, http.StatusBadRequest, "preço e tempo estimado não podem ser negativos")
		return
	}

	profile := oc.Session.ProfileFor(models.RoleStore)
	order := oc.Store.Create(models.Order{
		ID:        cuid.New(),
		StoreID:   profile.ID,
		StoreName: profile.Name,
		PickupLocation: models.Location{
			Address: oc.Config.PickupAddress,
			Lat:     oc.Config.PickupLat,
			Lng:     oc.Config.PickupLng,
		},
		DropoffLocation: models.Location{
			Address: req.DropoffAddress,
			Lat:     oc.Config.DefaultDropoffLat,
			Lng:     oc.Config.DefaultDropoffLng,
		},
		DistanceKm:    req.DistanceKm,
		Price:         req.Price,
		EstimatedTime: req.EstimatedTime,
	})

	respondJSON(w, http.StatusCreated, order)
}

// AcceptOrder assigns the pending order to the session rider.
func (oc *OrderController) AcceptOrder(w http.ResponseWriter, r *http.Request) {
	if oc.Session.Role() != models.RoleRider {
		respondError(w, http.StatusForbidden, "apenas motoboys podem aceitar entregas")
		return
	}

	orderID := mux.Vars(r)["id"]
	rider := oc.Session.ProfileFor(models.RoleRider)

	order, err := oc.Store.Accept(orderID, rider.ID)
	if err != nil {
		oc.respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Entrega aceita no RAPZ! Vá até o estabelecimento.",
		"order":   order,
	})
}

// CompleteOrder marks the rider's active delivery as delivered.
func (oc *OrderController) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	if oc.Session.Role() != models.RoleRider {
		respondError(w, http.StatusForbidden, "apenas motoboys podem concluir entregas")
		return
	}

	orderID := mux.Vars(r)["id"]
	order, err := oc.Store.Complete(orderID)
	if err != nil {
		oc.respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Parabéns! Entrega concluída com sucesso.",
		"order":   order,
	})
}

func (oc *OrderController) PendingOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, oc.Store.PendingOrders())
}

func (oc *OrderController) ActiveOrder(w http.ResponseWriter, r *http.Request) {
	order := oc.Store.ActiveOrder()
	if order == nil {
		respondError(w, http.StatusNotFound, "nenhuma entrega ativa")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (oc *OrderController) History(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, oc.Store.DeliveryHistory())
}

func (oc *OrderController) StoreOrders(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["id"]
	respondJSON(w, http.StatusOK, oc.Store.OrdersForStore(storeID))
}

func (oc *OrderController) Metrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, oc.Store.Metrics())
}

// RouteLink returns the external-maps deep link for an order. Opening it is
// the client's job; nothing is consumed back.
func (oc *OrderController) RouteLink(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	order, err := oc.Store.Get(orderID)
	if err != nil {
		oc.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"url": geo.RouteURL(order.PickupLocation, order.DropoffLocation),
	})
}

type riderHomeView struct {
	Role         models.Role    `json:"role"`
	Greeting     string         `json:"greeting"`
	PendingCount int            `json:"pending_count"`
	Pending      []models.Order `json:"pending"`
	Active       *models.Order  `json:"active,omitempty"`
}

type storeOrderView struct {
	models.Order
	Label string `json:"label"`
}

type storeHomeView struct {
	Role   models.Role      `json:"role"`
	Orders []storeOrderView `json:"orders"`
}

// Home renders the view model for the current role: the rider sees pending
// requests plus the active delivery, the store sees its own orders with
// display labels.
func (oc *OrderController) Home(w http.ResponseWriter, r *http.Request) {
	switch oc.Session.Role() {
	case models.RoleStore:
		profile := oc.Session.ProfileFor(models.RoleStore)
		orders := oc.Store.OrdersForStore(profile.ID)
		views := make([]storeOrderView, 0, len(orders))
		for _, o := range orders {
			views = append(views, storeOrderView{Order: o, Label: o.StoreLabel()})
		}
		respondJSON(w, http.StatusOK, storeHomeView{Role: models.RoleStore, Orders: views})
	default:
		profile := oc.Session.ProfileFor(models.RoleRider)
		pending := oc.Store.PendingOrders()
		respondJSON(w, http.StatusOK, riderHomeView{
			Role:         models.RoleRider,
			Greeting:     "Olá, " + profile.Name + "!",
			PendingCount: len(pending),
			Pending:      pending,
			Active:       oc.Store.ActiveOrder(),
		})
	}
}

func (oc *OrderController) respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrActiveDelivery), errors.Is(err, store.ErrOrderTaken), errors.Is(err, store.ErrOrderNotActive):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
