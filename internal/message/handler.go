package message

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gomessenger/internal/common"
)

type Handler struct {
	messageService MessageService
}

func NewHandler(messageService MessageService) *Handler {
	return &Handler{messageService: messageService}
}

type sendMessageRequest struct {
	RecipientID uint   `json:"recipient_id"`
	Content     string `json:"content"`
}

func (h *Handler) GetMessagesForChat(w http.ResponseWriter, r *http.Request) {
	callerID, ok := common.CallerID(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("user not authenticated"))
		return
	}

	peerID, err := strconv.ParseUint(mux.Vars(r)["recipientId"], 10, 64)
	if err != nil {
		common.WriteError(w, common.BadRequest("invalid recipient id"))
		return
	}

	log.Printf("GetMessagesForChat: (callerID: %d, recipientID: %d)", callerID, peerID)

	views, err := h.messageService.GetMessagesForChat(r.Context(), callerID, uint(peerID))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, views)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := common.CallerID(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("user not authenticated"))
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.BadRequest("invalid request body"))
		return
	}

	log.Printf("SendMessage: (callerID: %d, recipientID: %d)", callerID, req.RecipientID)

	view, err := h.messageService.SendMessage(r.Context(), callerID, req.RecipientID, req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, view)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := common.CallerID(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("user not authenticated"))
		return
	}

	messageID, err := strconv.ParseUint(mux.Vars(r)["messageId"], 10, 64)
	if err != nil {
		common.WriteError(w, common.BadRequest("invalid message id"))
		return
	}

	log.Printf("DeleteMessage: (callerID: %d, messageID: %d)", callerID, messageID)

	if err := h.messageService.DeleteMessage(r.Context(), callerID, uint(messageID)); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "Message deleted successfully"})
}
