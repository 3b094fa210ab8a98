package httpadapter

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adwallet/internal/core/domain"
)

type simulateViewResponse struct {
	Success               bool   `json:"success"`
	Impressions           int64  `json:"impressions"`
	EarningsETH           string `json:"earnings_eth"`
	EarningsTokens        string `json:"earnings_tokens"`
	PublisherETHBalance   string `json:"publisher_eth_balance"`
	PublisherTokenBalance string `json:"publisher_token_balance"`
}

// handleSimulateView records one synthetic ad view for the {videoID} path
// parameter. No session is required. Unknown or malformed ids result in
// HTTP 404.
func (h *Handler) handleSimulateView(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "videoID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	res, err := h.svc.SimulateView(r.Context(), id)
	if errors.Is(err, domain.ErrVideoNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.writeFailure(w, err, msgInvalidRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, simulateViewResponse{
		Success:               true,
		Impressions:           res.Video.Impressions,
		EarningsETH:           domain.FormatETH(res.Video.EarningsETH),
		EarningsTokens:        domain.FormatTokens(res.Video.EarningsTokens),
		PublisherETHBalance:   domain.FormatETH(res.Publisher.ETHBalance),
		PublisherTokenBalance: domain.FormatTokens(res.Publisher.TokenBalance),
	})
}
