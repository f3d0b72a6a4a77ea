package http

import (
	"net/http"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/internal/utils"
	"github.com/MKhiriev/fleet-dispatch/models"
)

type loginResponse struct {
	Token  string      `json:"token"`
	UserID int64       `json:"user_id"`
	Role   models.Role `json:"role"`
}

// login checks the credentials and answers with a bearer token, both in the
// Authorization header and in the body.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var credentials models.User
	if err := decodeJSON(w, r, &credentials); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("bad login request")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Str("login", credentials.Login).Msg("login failed")
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Int64("user_id", user.ID).Msg("token was not created")
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	utils.WriteJSON(w, loginResponse{Token: token.String(), UserID: user.ID, Role: user.Role}, http.StatusOK)
}
