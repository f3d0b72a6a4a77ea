package http

import (
	"net/http"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/utils"
	"github.com/MKhiriev/fleet-dispatch/models"
)

// updateUser changes the login and/or password of the authenticated user.
// Other users' credentials are off limits.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if userID, ok := utils.GetUserIDFromContext(r.Context()); !ok || userID != id {
		log.Warn().Str("func", "*Handler.updateUser").Int64("id", id).Msg("attempt to change foreign credentials")
		writeError(w, r, ErrForeignCredentials)
		return
	}

	var partial models.User
	if err = decodeJSON(w, r, &partial); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Send()
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updated, err := h.services.DispatchService.UpdateUser(r.Context(), id, partial)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Int64("id", id).Msg("credentials were not updated")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
