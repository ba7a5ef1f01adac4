package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, orderController *OrderController, pricingController *PricingController, sessionController *SessionController) {
	// Role-scoped home view
	router.HandleFunc("/home", orderController.Home).Methods("GET")

	// Order lifecycle
	router.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	router.HandleFunc("/orders/pending", orderController.PendingOrders).Methods("GET")
	router.HandleFunc("/orders/active", orderController.ActiveOrder).Methods("GET")
	router.HandleFunc("/orders/history", orderController.History).Methods("GET")
	router.HandleFunc("/orders/metrics", orderController.Metrics).Methods("GET")
	router.HandleFunc("/orders/{id}/accept", orderController.AcceptOrder).Methods("POST")
	router.HandleFunc("/orders/{id}/complete", orderController.CompleteOrder).Methods("POST")
	router.HandleFunc("/orders/{id}/route", orderController.RouteLink).Methods("GET")
	router.HandleFunc("/stores/{id}/orders", orderController.StoreOrders).Methods("GET")

	// Pricing
	router.HandleFunc("/pricing/estimate", pricingController.Estimate).Methods("POST")

	// Session
	router.HandleFunc("/session", sessionController.GetSession).Methods("GET")
	router.HandleFunc("/session/role", sessionController.SwitchRole).Methods("POST")
}
