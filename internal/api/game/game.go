package game

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"slot_machine/internal/converter"
	"slot_machine/internal/middleware"
	"slot_machine/internal/model"
	"slot_machine/internal/service"
	gameserv "slot_machine/internal/service/game"
	"slot_machine/pkg/resp"
)

type HandlerDeps struct {
	Serv   service.GameService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.GameService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, logger: deps.Logger}
}

// Spin запускает спин игрока
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	player, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "no player", string(model.PromptLogin))
		return
	}

	spinID, err := h.serv.AttemptSpin(r.Context(), player)
	if err != nil {
		h.writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(spinID))
}

// State отдает снимок состояния для отрисовки
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	player, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "no player", string(model.PromptLogin))
		return
	}

	st, err := h.serv.State(r.Context(), player)
	if err != nil {
		h.writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*st))
}

// ClosePopup закрывает окно выигрыша и снимает блокировку
func (h *Handler) ClosePopup(w http.ResponseWriter, r *http.Request) {
	player, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "no player", string(model.PromptLogin))
		return
	}

	if err := h.serv.ClosePopup(r.Context(), player); err != nil {
		h.writeGameError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DismissPrompt(w http.ResponseWriter, r *http.Request) {
	player, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "no player", string(model.PromptLogin))
		return
	}

	if err := h.serv.DismissPrompt(r.Context(), player); err != nil {
		h.writeGameError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gameserv.ErrCooldown), errors.Is(err, gameserv.ErrSpinInProgress):
		resp.WriteError(w, http.StatusTooManyRequests, err.Error(), "")
	case errors.Is(err, gameserv.ErrSignInRequired):
		resp.WriteError(w, http.StatusUnauthorized, err.Error(), string(model.PromptLogin))
	case errors.Is(err, gameserv.ErrOutOfAttempts):
		resp.WriteError(w, http.StatusForbidden, err.Error(), string(model.PromptOutOfSpins))
	case errors.Is(err, gameserv.ErrNoPopup):
		resp.WriteError(w, http.StatusConflict, err.Error(), "")
	default:
		h.logger.Error("game request failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal error", "")
	}
}
