package httpadapter

import (
	"net/http"

	"adwallet/internal/core/domain"
)

type addETHResponse struct {
	Success    bool   `json:"success"`
	NewBalance string `json:"new_balance"`
}

type createCampaignResponse struct {
	Success    bool   `json:"success"`
	CampaignID int64  `json:"campaign_id"`
	NewBalance string `json:"new_balance"`
}

// handleAddETH credits the simulated deposit in {"amount"} to the caller.
func (h *Handler) handleAddETH(w http.ResponseWriter, r *http.Request) {
	wallet := identityFrom(r.Context()).Wallet
	if wallet == "" {
		h.writeFailure(w, domain.ErrNotAuthenticated, msgUserNotFound)
		return
	}

	var req addETHRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeFailure(w, err, msgUserNotFound)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		h.writeFailure(w, err, msgUserNotFound)
		return
	}

	balance, err := h.svc.AddETH(r.Context(), wallet, amount)
	if err != nil {
		h.writeFailure(w, err, msgUserNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, addETHResponse{Success: true, NewBalance: domain.FormatETH(balance)})
}

// handleCreateCampaign funds a campaign on {"video_id"} with {"budget"} ETH
// taken from the caller's balance.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	wallet := identityFrom(r.Context()).Wallet
	if wallet == "" {
		h.writeFailure(w, domain.ErrNotAuthenticated, msgInvalidRequest)
		return
	}

	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeFailure(w, err, msgInvalidRequest)
		return
	}
	videoID, err := parseID(req.VideoID)
	if err != nil {
		h.writeFailure(w, err, msgInvalidRequest)
		return
	}
	budget, err := parseAmount(req.Budget)
	if err != nil {
		h.writeFailure(w, err, msgInvalidRequest)
		return
	}

	res, err := h.svc.CreateCampaign(r.Context(), wallet, videoID, budget)
	if err != nil {
		h.writeFailure(w, err, msgInvalidRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, createCampaignResponse{
		Success:    true,
		CampaignID: res.Campaign.ID,
		NewBalance: domain.FormatETH(res.NewBalance),
	})
}
