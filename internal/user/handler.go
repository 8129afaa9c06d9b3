package user

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gomessenger/internal/common"
)

// Handler wires HTTP requests to the user service. The router guarantees a
// verified caller reached us; user lookups take no caller-specific input.
type Handler struct {
	userService UserService
}

func NewHandler(userService UserService) *Handler {
	return &Handler{userService: userService}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteError(w, common.BadRequest("invalid user id"))
		return
	}

	log.Printf("GetUser(id: %d)", id)

	view, err := h.userService.GetUser(r.Context(), uint(id))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	log.Printf("GetUsers")

	views, err := h.userService.GetUsers(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, views)
}
