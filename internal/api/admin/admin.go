package admin

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	dto "slot_machine/internal/api/dto/admin"
	"slot_machine/internal/converter"
	"slot_machine/internal/model"
	"slot_machine/internal/service"
	"slot_machine/pkg/req"
	"slot_machine/pkg/resp"
)

type HandlerDeps struct {
	Claims service.ClaimService
	Stats  service.StatsService
	Logger *zap.Logger
}

type Handler struct {
	claims service.ClaimService
	stats  service.StatsService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{claims: deps.Claims, stats: deps.Stats, logger: deps.Logger}
}

// Claim погашает код выигрыша
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ClaimRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request", "")
		return
	}

	outcome, err := h.claims.Redeem(r.Context(), payload.Code)
	if err != nil {
		h.logger.Error("claim failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "claim failed", "")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToClaimResponse(outcome))
}

// ListWins - выигрыши, новые первыми. ?filter=all|claimed|unclaimed&page=N
func (h *Handler) ListWins(w http.ResponseWriter, r *http.Request) {
	filter := model.ParseWinFilter(r.URL.Query().Get("filter"))

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, "invalid page", "")
			return
		}
		page = n
	}

	result, err := h.claims.List(r.Context(), filter, page)
	if err != nil {
		h.logger.Error("list wins failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "list failed", "")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWinListResponse(*result))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.stats.Report()))
}
