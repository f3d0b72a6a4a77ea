package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/login", h.login)
		r.Post("/api/dispatchers", h.createDispatcher)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/drivers", h.createDriver)
		r.Get("/api/drivers/{id}", h.getDriver)
		r.Patch("/api/drivers/{id}", h.updateDriver)
		r.Get("/api/drivers/{id}/earnings", h.driverEarnings)

		r.Post("/api/cars", h.createCar)
		r.Get("/api/cars/{id}", h.getCar)
		r.Patch("/api/cars/{id}", h.updateCar)

		r.Post("/api/orders", h.createOrder)
		r.Get("/api/orders", h.listOrders)
		r.Get("/api/orders/{id}", h.getOrder)
		r.Patch("/api/orders/{id}", h.updateOrder)

		r.Get("/api/dispatchers/{id}", h.getDispatcher)
		r.Patch("/api/dispatchers/{id}", h.updateDispatcher)

		r.Patch("/api/users/{id}", h.updateUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
