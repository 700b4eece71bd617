package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"tpb/internal/clerk/models"
	"tpb/internal/clerk/service"
	dErrors "tpb/pkg/domain-errors"
	"tpb/pkg/platform/httputil"
	"tpb/pkg/requestcontext"
)

// Service defines the clerk operations the handler needs.
type Service interface {
	Chat(ctx context.Context, req service.ChatRequest) (*service.ChatResponse, error)
}

// Handler wires clerk endpoints to the clerk service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts clerk endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/clerk/chat", h.HandleChat)
}

// ChatRequest is the POST /clerk/chat body.
type ChatRequest struct {
	Message string        `json:"message"`
	History []models.Turn `json:"history"`
	Clerk   string        `json:"clerk"`
}

func (r *ChatRequest) Validate() error {
	r.Message = strings.TrimSpace(r.Message)
	r.Clerk = strings.TrimSpace(r.Clerk)
	if r.Message == "" {
		return dErrors.New(dErrors.CodeValidation, "No message provided")
	}
	for _, turn := range r.History {
		if err := turn.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HandleChat handles POST /clerk/chat. Anonymous callers are served too.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ChatRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	resp, err := h.service.Chat(ctx, service.ChatRequest{
		Message: req.Message,
		History: req.History,
		Clerk:   req.Clerk,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "clerk chat failed",
			"request_id", requestID,
			"user_id", requestcontext.UserID(ctx),
			"clerk", req.Clerk,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "clerk chat answered",
		"request_id", requestID,
		"user_id", requestcontext.UserID(ctx),
		"clerk", resp.Clerk,
		"actions", len(resp.Actions),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}
