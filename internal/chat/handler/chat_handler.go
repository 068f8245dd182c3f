package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"eduverse/internal/chat/repository"
	"eduverse/internal/chat/service"
	"eduverse/internal/common"
	"eduverse/internal/dbmysql"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// ChatHandler wires the HTTP surface to the engine services. It stays
// thin: decode, validate, call, encode.
type ChatHandler struct {
	membership service.MembershipService
	messages   service.MessageService
	reactions  service.ReactionService
	receipts   service.ReadReceiptService
	pins       service.PinService
	validate   *validator.Validate
}

func NewChatHandler(
	membership service.MembershipService,
	messages service.MessageService,
	reactions service.ReactionService,
	receipts service.ReadReceiptService,
	pins service.PinService,
) *ChatHandler {
	return &ChatHandler{
		membership: membership,
		messages:   messages,
		reactions:  reactions,
		receipts:   receipts,
		pins:       pins,
		validate:   validator.New(),
	}
}

// Register mounts every route on the given (already authenticated)
// subrouter.
func (h *ChatHandler) Register(api *mux.Router) {
	api.HandleFunc("/conversations", h.CreateConversation).Methods("POST")
	api.HandleFunc("/conversations", h.ListConversations).Methods("GET")
	api.HandleFunc("/conversations/direct", h.CreateOrGetDirect).Methods("POST")

	api.HandleFunc("/conversations/{conversationID}/members", h.ListMembers).Methods("GET")
	api.HandleFunc("/conversations/{conversationID}/members", h.InviteMember).Methods("POST")
	api.HandleFunc("/conversations/{conversationID}/members/pending", h.ListPendingMembers).Methods("GET")
	api.HandleFunc("/conversations/{conversationID}/members/{userID}", h.KickMember).Methods("DELETE")
	api.HandleFunc("/conversations/{conversationID}/leave", h.LeaveConversation).Methods("POST")
	api.HandleFunc("/conversations/{conversationID}/unhide", h.UnhideParticipant).Methods("POST")
	api.HandleFunc("/join-requests/{requestID}/resolve", h.ApproveJoinRequest).Methods("POST")

	api.HandleFunc("/conversations/{conversationID}/messages", h.SendMessage).Methods("POST")
	api.HandleFunc("/conversations/{conversationID}/messages", h.ListMessages).Methods("GET")
	api.HandleFunc("/conversations/{conversationID}/messages/search", h.SearchMessages).Methods("GET")
	api.HandleFunc("/conversations/{conversationID}/unread-count", h.CountUnread).Methods("GET")
	api.HandleFunc("/conversations/{conversationID}/pins", h.ListPinnedMessages).Methods("GET")

	api.HandleFunc("/messages/{messageID}", h.EditMessage).Methods("PATCH")
	api.HandleFunc("/messages/{messageID}", h.DeleteMessage).Methods("DELETE")
	api.HandleFunc("/messages/{messageID}/reactions", h.ListReactions).Methods("GET")
	api.HandleFunc("/messages/{messageID}/reactions/{emoji}", h.React).Methods("PUT")
	api.HandleFunc("/messages/{messageID}/reactions/{emoji}", h.Unreact).Methods("DELETE")
	api.HandleFunc("/messages/{messageID}/read", h.MarkRead).Methods("PUT")
	api.HandleFunc("/messages/{messageID}/receipts", h.ListReceipts).Methods("GET")
	api.HandleFunc("/messages/{messageID}/pin", h.PinMessage).Methods("PUT")
	api.HandleFunc("/messages/{messageID}/pin", h.UnpinMessage).Methods("DELETE")
}

type createConversationRequest struct {
	Type           string   `json:"type" validate:"required,oneof=direct group"`
	ParticipantIDs []uint64 `json:"participant_ids" validate:"required,min=1"`
	Title          string   `json:"title" validate:"max=100"`
	Description    string   `json:"description"`
}

func (h *ChatHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req createConversationRequest
	if !h.decode(w, r, &req) {
		return
	}

	conv, err := h.membership.CreateConversation(r.Context(), userID, common.ConversationType(req.Type), req.ParticipantIDs, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conv)
}

type directConversationRequest struct {
	PeerID uint64 `json:"peer_id" validate:"required"`
}

func (h *ChatHandler) CreateOrGetDirect(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req directConversationRequest
	if !h.decode(w, r, &req) {
		return
	}

	conv, err := h.membership.CreateOrGetDirect(r.Context(), userID, req.PeerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

func (h *ChatHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}
	limit, offset := pagination(r)

	conversations, err := h.membership.ListConversations(r.Context(), userID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversations)
}

type inviteMemberRequest struct {
	TargetUserID uint64 `json:"target_user_id" validate:"required"`
}

func (h *ChatHandler) InviteMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req inviteMemberRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.membership.InviteMember(r.Context(), mux.Vars(r)["conversationID"], userID, req.TargetUserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type resolveJoinRequestRequest struct {
	Approve bool `json:"approve"`
}

func (h *ChatHandler) ApproveJoinRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req resolveJoinRequestRequest
	if !h.decode(w, r, &req) {
		return
	}

	request, err := h.membership.ApproveJoinRequest(r.Context(), mux.Vars(r)["requestID"], userID, req.Approve)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *ChatHandler) KickMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	vars := mux.Vars(r)
	target, err := strconv.ParseUint(vars["userID"], 10, 64)
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.membership.KickMember(r.Context(), vars["conversationID"], userID, target); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) LeaveConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.membership.LeaveConversation(r.Context(), mux.Vars(r)["conversationID"], userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ChatHandler) UnhideParticipant(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.membership.UnhideParticipant(r.Context(), mux.Vars(r)["conversationID"], userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}
	limit, offset := pagination(r)

	members, err := h.membership.ListMembers(r.Context(), mux.Vars(r)["conversationID"], userID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *ChatHandler) ListPendingMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}
	limit, offset := pagination(r)

	pending, err := h.membership.ListPendingMembers(r.Context(), mux.Vars(r)["conversationID"], userID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pending)
}

type sendMessageRequest struct {
	Content          string               `json:"content" validate:"required"`
	MessageType      string               `json:"message_type" validate:"omitempty,oneof=text image file system"`
	ReplyToMessageID *string              `json:"reply_to_message_id"`
	Attachments      []dbmysql.Attachment `json:"attachments"`
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req sendMessageRequest
	if !h.decode(w, r, &req) {
		return
	}

	msg, err := h.messages.SendMessage(r.Context(), mux.Vars(r)["conversationID"], userID,
		req.Content, common.MessageType(req.MessageType), req.ReplyToMessageID, req.Attachments)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}
	limit, offset := pagination(r)

	messages, err := h.messages.ListMessages(r.Context(), mux.Vars(r)["conversationID"], userID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *ChatHandler) SearchMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}
	limit, offset := pagination(r)

	filter, err := searchFilter(r)
	if err != nil {
		writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	messages, err := h.messages.SearchMessages(r.Context(), mux.Vars(r)["conversationID"], userID, filter, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

type editMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *ChatHandler) EditMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req editMessageRequest
	if !h.decode(w, r, &req) {
		return
	}

	msg, err := h.messages.EditMessage(r.Context(), mux.Vars(r)["messageID"], userID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.messages.DeleteMessage(r.Context(), mux.Vars(r)["messageID"], userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) React(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	vars := mux.Vars(r)
	if err := h.reactions.React(r.Context(), vars["messageID"], userID, vars["emoji"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) Unreact(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	vars := mux.Vars(r)
	if err := h.reactions.Unreact(r.Context(), vars["messageID"], userID, vars["emoji"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) ListReactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	reactions, err := h.reactions.ListReactions(r.Context(), mux.Vars(r)["messageID"], userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reactions)
}

func (h *ChatHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.receipts.MarkRead(r.Context(), mux.Vars(r)["messageID"], userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) ListReceipts(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	receipts, err := h.receipts.ListReceipts(r.Context(), mux.Vars(r)["messageID"], userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipts)
}

func (h *ChatHandler) CountUnread(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	count, err := h.receipts.CountUnread(r.Context(), mux.Vars(r)["conversationID"], userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"unread": count})
}

func (h *ChatHandler) PinMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	pin, err := h.pins.PinMessage(r.Context(), mux.Vars(r)["messageID"], userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pin)
}

func (h *ChatHandler) UnpinMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.pins.UnpinMessage(r.Context(), mux.Vars(r)["messageID"], userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) ListPinnedMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "user not authenticated")
		return
	}
	limit, offset := pagination(r)

	pinned, err := h.pins.ListPinnedMessages(r.Context(), mux.Vars(r)["conversationID"], userID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	type pinnedEntry struct {
		Pin     *dbmysql.MessagePin `json:"pin"`
		Message *dbmysql.Message    `json:"message"`
	}
	out := make([]pinnedEntry, 0, len(pinned))
	for _, p := range pinned {
		out = append(out, pinnedEntry{Pin: p.Pin, Message: p.Message})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ChatHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeStatus(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeStatus(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func searchFilter(r *http.Request) (repository.SearchFilter, error) {
	var filter repository.SearchFilter
	q := r.URL.Query()

	if v := q.Get("sender_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.SenderID = &id
	}
	if v := q.Get("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = &t
	}
	if v := q.Get("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.DateTo = &t
	}
	filter.Text = q.Get("text")
	filter.MessageType = common.MessageType(q.Get("message_type"))
	filter.OnlyWithAttachments = q.Get("only_with_attachments") == "true"

	return filter, nil
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 50
	if v := r.URL.Query().Get("take"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeStatus(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeError(w http.ResponseWriter, err error) {
	switch common.KindOf(err) {
	case common.KindNotFound:
		writeStatus(w, http.StatusNotFound, err.Error())
	case common.KindForbidden:
		writeStatus(w, http.StatusForbidden, err.Error())
	case common.KindConflict:
		writeStatus(w, http.StatusConflict, err.Error())
	case common.KindInvalidArgument:
		writeStatus(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeStatus(w, http.StatusInternalServerError, "internal error")
	}
}
