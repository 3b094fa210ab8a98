package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
)

// errInvalidBody is reported when a JSON endpoint receives a body that is
// not a JSON object of the expected shape.
var errInvalidBody = &domain.Error{Kind: domain.KindInvalidInput, Reason: "invalid_body", Message: "invalid request body"}

type connectWalletRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required"`
}

type selectRoleForm struct {
	Role string `validate:"required,oneof=publisher advertiser"`
}

// Amounts and ids accept both JSON numbers and numeric strings, so they are
// kept raw until parsed.
type addETHRequest struct {
	Amount json.RawMessage `json:"amount"`
}

type createCampaignRequest struct {
	VideoID json.RawMessage `json:"video_id"`
	Budget  json.RawMessage `json:"budget"`
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidBody
	}
	return nil
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// parseAmount reads a decimal given as number or string. An absent value is
// zero. Values that cannot be stored as an ETH amount are rejected here,
// before anything rounds them.
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	if isAbsent(raw) {
		return decimal.Zero, nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(bytes.TrimSpace(raw)); err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	if !domain.ValidAmount(d) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return d, nil
}

// parseID reads an integer id given as number or string. An absent id is 0,
// which matches no record.
func parseID(raw json.RawMessage) (int64, error) {
	if isAbsent(raw) {
		return 0, nil
	}
	s := string(bytes.TrimSpace(raw))
	if s[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, domain.ErrInvalidVideoID
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidVideoID
	}
	return id, nil
}
