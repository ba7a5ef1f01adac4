package api

import (
	"encoding/json"
	"net/http"

	"github.com/NicolasCard/RAPZ/internal/models"
	"github.com/NicolasCard/RAPZ/internal/session"
)

// SessionController serves the role toggle and the profile view.
type SessionController struct {
	Session *session.Session
}

func NewSessionController(sess *session.Session) *SessionController {
	return &SessionController{Session: sess}
}

func (sc *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"role":    sc.Session.Role(),
		"profile": sc.Session.Profile(),
	})
}

type switchRoleRequest struct {
	Role models.Role `json:"role"`
}

func (sc *SessionController) SwitchRole(w http.ResponseWriter, r *http.Request) {
	var req switchRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if err := sc.Session.SwitchRole(req.Role); err != nil {
		respondError(w, http.StatusBadRequest, "papel desconhecido")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"role":    sc.Session.Role(),
		"profile": sc.Session.Profile(),
	})
}
