package port

import (
	"context"

	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
)

// MarketRepository defines the persistence layer for profiles, videos and
// campaigns. It is an outbound port in hexagonal architecture.
// Implementations must apply every balance change atomically so that
// concurrent requests against one profile never lose an update.
type MarketRepository interface {
	// GetProfileByWallet returns the profile registered for wallet, or nil
	// when there is none.
	GetProfileByWallet(ctx context.Context, wallet string) (*domain.Profile, error)
	// CreateProfile inserts p and fills in its ID and CreatedAt. It returns
	// domain.ErrProfileExists when the wallet is already registered.
	CreateProfile(ctx context.Context, p *domain.Profile) error
	// CreditProfile adds eth and tokens (either may be negative) to the
	// profile balances and returns the updated profile.
	CreditProfile(ctx context.Context, profileID int64, eth, tokens decimal.Decimal) (*domain.Profile, error)

	// CreateVideo inserts v and fills in its ID and UploadedAt.
	CreateVideo(ctx context.Context, v *domain.Video) error
	// GetVideo returns a video by id, or nil when it does not exist.
	GetVideo(ctx context.Context, id int64) (*domain.Video, error)
	// ListVideos returns every video, newest first.
	ListVideos(ctx context.Context) ([]domain.Video, error)
	// ListVideosByOwner returns the videos uploaded by a profile.
	ListVideosByOwner(ctx context.Context, profileID int64) ([]domain.Video, error)
	// RecordView adds one impression plus eth/tokens earnings to a video and
	// credits the same amounts to its owner in one transaction. It returns
	// domain.ErrVideoNotFound for an unknown id.
	RecordView(ctx context.Context, videoID int64, eth, tokens decimal.Decimal) (*ViewResult, error)

	// CreateCampaign inserts c and debits its budget from the advertiser in
	// one transaction, returning the advertiser's new ETH balance. When the
	// balance does not cover the budget nothing is written and
	// domain.ErrInsufficientBalance is returned.
	CreateCampaign(ctx context.Context, c *domain.Campaign) (decimal.Decimal, error)
	// ListCampaignsByAdvertiser returns the campaigns funded by a profile.
	ListCampaignsByAdvertiser(ctx context.Context, profileID int64) ([]domain.Campaign, error)
}

// ViewResult is the state of a video and its owner after a simulated view.
type ViewResult struct {
	Video     domain.Video
	Publisher domain.Profile
}
