package domain

import "errors"

// Kind classifies domain failures. Transports map kinds to their own status
// conventions; anything that is not a *Error is KindInternal.
type Kind int

const (
	KindInternal Kind = iota
	KindNotAuthenticated
	KindNotFound
	KindInvalidInput
	KindInsufficientBalance
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotAuthenticated:
		return "not_authenticated"
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindInsufficientBalance:
		return "insufficient_balance"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a classified domain failure. Reason is a stable machine-readable
// cause that distinguishes errors sharing a Kind.
type Error struct {
	Kind    Kind
	Reason  string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrNotAuthenticated    = &Error{Kind: KindNotAuthenticated, Reason: "not_authenticated", Message: "not authenticated"}
	ErrInvalidWallet       = &Error{Kind: KindInvalidInput, Reason: "invalid_wallet", Message: "invalid wallet address"}
	ErrInvalidRole         = &Error{Kind: KindInvalidInput, Reason: "invalid_role", Message: "role must be publisher or advertiser"}
	ErrMissingUpload       = &Error{Kind: KindInvalidInput, Reason: "missing_upload", Message: "title and video file are required"}
	ErrTitleTooLong        = &Error{Kind: KindInvalidInput, Reason: "title_too_long", Message: "title is too long"}
	ErrInvalidAmount       = &Error{Kind: KindInvalidInput, Reason: "invalid_amount", Message: "invalid decimal amount"}
	ErrInvalidVideoID      = &Error{Kind: KindInvalidInput, Reason: "invalid_video_id", Message: "video id must be an integer"}
	ErrProfileNotFound     = &Error{Kind: KindNotFound, Reason: "profile_not_found", Message: "profile not found"}
	ErrWrongRole           = &Error{Kind: KindNotFound, Reason: "wrong_role", Message: "profile has a different role"}
	ErrVideoNotFound       = &Error{Kind: KindNotFound, Reason: "video_not_found", Message: "video not found"}
	ErrInsufficientBalance = &Error{Kind: KindInsufficientBalance, Reason: "insufficient_balance", Message: "insufficient balance"}
	ErrProfileExists       = &Error{Kind: KindConflict, Reason: "profile_exists", Message: "profile already registered for this wallet"}
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ReasonOf returns the reason of the first *Error in err's chain, or "".
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
