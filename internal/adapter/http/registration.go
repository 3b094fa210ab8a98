package httpadapter

import (
	"net/http"

	"adwallet/internal/core/domain"
)

type selectRoleView struct {
	WalletAddress string   `json:"wallet_address"`
	Roles         []string `json:"roles"`
}

var roleChoices = []string{string(domain.RolePublisher), string(domain.RoleAdvertiser)}

// handleSelectRole shows the role form and, on a POST with a known role,
// registers the caller. Unknown roles just show the form again.
func (h *Handler) handleSelectRole(w http.ResponseWriter, r *http.Request) {
	wallet := identityFrom(r.Context()).Wallet
	if wallet == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if r.Method == http.MethodPost {
		form := selectRoleForm{Role: r.PostFormValue("role")}
		if h.validate.Struct(form) == nil {
			p, err := h.svc.SelectRole(r.Context(), wallet, form.Role)
			if err == nil {
				http.Redirect(w, r, p.Role.DashboardPath(), http.StatusFound)
				return
			}
			switch domain.KindOf(err) {
			case domain.KindConflict:
				h.writeFailure(w, err, msgInvalidRequest)
				return
			case domain.KindInvalidInput:
				// show the form again
			default:
				h.pageFailure(w, r, err)
				return
			}
		}
	}

	h.writeJSON(w, http.StatusOK, selectRoleView{WalletAddress: wallet, Roles: roleChoices})
}
