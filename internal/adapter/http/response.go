package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"adwallet/internal/core/domain"
)

// Messages returned in the "error" field of failed JSON responses.
const (
	msgNotAuthenticated    = "Not authenticated"
	msgUserNotFound        = "User not found"
	msgInvalidRequest      = "Invalid request"
	msgInsufficientBalance = "Insufficient balance"
	msgInvalidWallet       = "Invalid wallet address"
	msgInvalidAmount       = "Invalid amount"
	msgInvalidBody         = "Invalid request body"
	msgProfileExists       = "Profile already exists"
	msgInternal            = "internal error"
)

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Reason  string `json:"reason,omitempty"`
}

type profileView struct {
	ID            int64     `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Role          string    `json:"role"`
	ETHBalance    string    `json:"eth_balance"`
	TokenBalance  string    `json:"token_balance"`
	CreatedAt     time.Time `json:"created_at"`
}

func newProfileView(p domain.Profile) profileView {
	return profileView{
		ID:            p.ID,
		WalletAddress: p.WalletAddress,
		Role:          string(p.Role),
		ETHBalance:    domain.FormatETH(p.ETHBalance),
		TokenBalance:  domain.FormatTokens(p.TokenBalance),
		CreatedAt:     p.CreatedAt,
	}
}

type videoView struct {
	ID             int64     `json:"id"`
	PublisherID    int64     `json:"publisher_id"`
	Title          string    `json:"title"`
	VideoFile      string    `json:"video_file"`
	Impressions    int64     `json:"impressions"`
	EarningsETH    string    `json:"earnings_eth"`
	EarningsTokens string    `json:"earnings_tokens"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

func newVideoViews(videos []domain.Video) []videoView {
	out := make([]videoView, 0, len(videos))
	for _, v := range videos {
		out = append(out, videoView{
			ID:             v.ID,
			PublisherID:    v.PublisherID,
			Title:          v.Title,
			VideoFile:      v.VideoFile,
			Impressions:    v.Impressions,
			EarningsETH:    domain.FormatETH(v.EarningsETH),
			EarningsTokens: domain.FormatTokens(v.EarningsTokens),
			UploadedAt:     v.UploadedAt,
		})
	}
	return out
}

// campaignView exposes spent_eth and views read-only; nothing updates them.
type campaignView struct {
	ID           int64     `json:"id"`
	AdvertiserID int64     `json:"advertiser_id"`
	VideoID      int64     `json:"video_id"`
	BudgetETH    string    `json:"budget_eth"`
	SpentETH     string    `json:"spent_eth"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
}

func newCampaignViews(campaigns []domain.Campaign) []campaignView {
	out := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, campaignView{
			ID:           c.ID,
			AdvertiserID: c.AdvertiserID,
			VideoID:      c.VideoID,
			BudgetETH:    domain.FormatETH(c.BudgetETH),
			SpentETH:     domain.FormatETH(c.SpentETH),
			Views:        c.Views,
			CreatedAt:    c.CreatedAt,
		})
	}
	return out
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeFailure reports err on a JSON endpoint. Business failures keep HTTP
// 200 with success=false; anything unclassified is logged and becomes 500.
// notFound is the message used for NotFound errors, which differs per
// endpoint.
func (h *Handler) writeFailure(w http.ResponseWriter, err error, notFound string) {
	var msg string
	switch domain.KindOf(err) {
	case domain.KindNotAuthenticated:
		msg = msgNotAuthenticated
	case domain.KindNotFound:
		msg = notFound
	case domain.KindInsufficientBalance:
		msg = msgInsufficientBalance
	case domain.KindConflict:
		h.writeJSON(w, http.StatusConflict, failureResponse{Error: msgProfileExists, Reason: domain.ReasonOf(err)})
		return
	case domain.KindInvalidInput:
		switch domain.ReasonOf(err) {
		case domain.ErrInvalidWallet.Reason:
			msg = msgInvalidWallet
		case domain.ErrInvalidAmount.Reason:
			msg = msgInvalidAmount
		case errInvalidBody.Reason:
			msg = msgInvalidBody
		default:
			msg = msgInvalidRequest
		}
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, failureResponse{Error: msgInternal})
		return
	}
	h.writeJSON(w, http.StatusOK, failureResponse{Error: msg, Reason: domain.ReasonOf(err)})
}

// pageFailure handles errors of the page endpoints: callers without a
// usable profile are sent home, anything else is a server error.
func (h *Handler) pageFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotAuthenticated, domain.KindNotFound:
		http.Redirect(w, r, "/", http.StatusFound)
	default:
		h.logger.Error("page failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		http.Error(w, msgInternal, http.StatusInternalServerError)
	}
}
