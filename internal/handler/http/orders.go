package http

import (
	"net/http"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/utils"
	"github.com/MKhiriev/fleet-dispatch/models"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var order models.Order
	if err := decodeJSON(w, r, &order); err != nil {
		log.Err(err).Str("func", "*Handler.createOrder").Send()
		writeError(w, r, ErrInvalidJSON)
		return
	}
	order.ID = 0

	created, err := h.services.DispatchService.CreateOrder(r.Context(), order)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createOrder").Int64("driver_id", order.DriverID).Msg("order was not created")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	order, err := h.services.DispatchService.GetOrder(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getOrder").Int64("id", id).Send()
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, order, http.StatusOK)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var partial models.Order
	if err = decodeJSON(w, r, &partial); err != nil {
		log.Err(err).Str("func", "*Handler.updateOrder").Send()
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updated, err := h.services.DispatchService.UpdateOrder(r.Context(), id, partial)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateOrder").Int64("id", id).Msg("order was not updated")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// listOrders answers GET /api/orders?driver_id=&from=&to=. Every parameter
// is optional.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	driverID, err := queryID(r, "driver_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	filter := models.OrderFilter{
		DriverID: driverID,
		From:     query.Get("from"),
		To:       query.Get("to"),
	}

	orders, err := h.services.DispatchService.ListOrders(r.Context(), filter)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listOrders").Send()
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}
