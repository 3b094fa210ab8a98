package httpadapter

import (
	"context"
	"net/http"

	"adwallet/internal/adapter/session"
	"adwallet/internal/core/domain"
)

type connectWalletResponse struct {
	Success     bool   `json:"success"`
	HasProfile  bool   `json:"has_profile"`
	Role        string `json:"role,omitempty"`
	RedirectURL string `json:"redirect_url"`
}

type homeView struct {
	WalletAddress string       `json:"wallet_address"`
	Profile       *profileView `json:"profile,omitempty"`
}

// handleHome describes the current session: the declared wallet and, when
// registered, its profile.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	wallet := identityFrom(r.Context()).Wallet
	view := homeView{WalletAddress: wallet}

	p, err := h.svc.Profile(r.Context(), wallet)
	if err != nil {
		h.pageFailure(w, r, err)
		return
	}
	if p != nil {
		pv := newProfileView(*p)
		view.Profile = &pv
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handleConnectWallet stores the declared address in the caller's session,
// starting one when needed, and tells the client where to go next.
func (h *Handler) handleConnectWallet(w http.ResponseWriter, r *http.Request) {
	var req connectWalletRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeFailure(w, err, msgInvalidRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeFailure(w, domain.ErrInvalidWallet, msgInvalidRequest)
		return
	}

	res, err := h.svc.ConnectWallet(r.Context(), req.WalletAddress)
	if err != nil {
		h.writeFailure(w, err, msgInvalidRequest)
		return
	}
	if err = h.bindWallet(r.Context(), w, res.Wallet); err != nil {
		h.writeFailure(w, err, msgInvalidRequest)
		return
	}

	resp := connectWalletResponse{Success: true, HasProfile: res.HasProfile, RedirectURL: res.RedirectURL}
	if res.HasProfile {
		resp.Role = string(res.Role)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// bindWallet saves wallet under the caller's session id, or a new one, and
// (re)issues the session cookie.
func (h *Handler) bindWallet(ctx context.Context, w http.ResponseWriter, wallet string) error {
	sid := identityFrom(ctx).SessionID
	if sid == "" {
		sid = session.NewID()
	}
	if err := h.sessions.Save(ctx, sid, wallet); err != nil {
		return err
	}
	token, err := h.tokens.Issue(sid)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.opts.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
