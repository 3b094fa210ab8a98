package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxTitleLength is the longest title the videos table accepts.
const MaxTitleLength = 200

// Video is an uploaded asset together with the earnings it accrued from
// simulated views. PublisherID references the profile that uploaded it,
// whatever that profile's role.
type Video struct {
	ID             int64
	PublisherID    int64
	Title          string
	VideoFile      string // storage reference, relative to the media root
	Impressions    int64
	EarningsETH    decimal.Decimal
	EarningsTokens decimal.Decimal
	UploadedAt     time.Time
}
