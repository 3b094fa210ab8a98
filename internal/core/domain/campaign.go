package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is an advertiser's funding commitment against a video.
// BudgetETH is debited from the advertiser when the campaign is created.
// SpentETH and Views are persisted but nothing updates them yet.
type Campaign struct {
	ID           int64
	AdvertiserID int64
	VideoID      int64
	BudgetETH    decimal.Decimal
	SpentETH     decimal.Decimal
	Views        int64
	CreatedAt    time.Time
}
