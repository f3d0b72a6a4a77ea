package http

import (
	"net/http"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/utils"
	"github.com/MKhiriev/fleet-dispatch/models"
)

// createDispatcher is the public registration endpoint.
func (h *Handler) createDispatcher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var dispatcher models.Dispatcher
	if err := decodeJSON(w, r, &dispatcher); err != nil {
		log.Err(err).Str("func", "*Handler.createDispatcher").Send()
		writeError(w, r, ErrInvalidJSON)
		return
	}
	dispatcher.ID = 0

	created, err := h.services.DispatchService.CreateDispatcher(r.Context(), dispatcher)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createDispatcher").Str("login", dispatcher.Login).Msg("dispatcher was not registered")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getDispatcher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dispatcher, err := h.services.DispatchService.GetDispatcher(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getDispatcher").Int64("id", id).Send()
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, dispatcher, http.StatusOK)
}

func (h *Handler) updateDispatcher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var partial models.Dispatcher
	if err = decodeJSON(w, r, &partial); err != nil {
		log.Err(err).Str("func", "*Handler.updateDispatcher").Send()
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updated, err := h.services.DispatchService.UpdateDispatcher(r.Context(), id, partial)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateDispatcher").Int64("id", id).Msg("dispatcher was not updated")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
