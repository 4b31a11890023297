package api

import (
	"net/http"

	"sharedspaces/internal/service"
)

// AdminHandler serves the JWT-protected admin views.
type AdminHandler struct {
	Waitlist *service.WaitlistService
}

func NewAdminHandler(waitlist *service.WaitlistService) *AdminHandler {
	return &AdminHandler{Waitlist: waitlist}
}

func (h *AdminHandler) ListWaitlist(w http.ResponseWriter, r *http.Request) {
	waitlist, err := h.Waitlist.GetAllWaitlist()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, waitlist)
}
