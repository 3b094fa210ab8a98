package port

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
)

// MarketUseCase defines the business operations of the marketplace. Wallet
// arguments are the address stored in the caller's session; an empty wallet
// means the caller has not connected one.
type MarketUseCase interface {
	// ConnectWallet normalises a declared address and reports whether a
	// profile already exists for it.
	ConnectWallet(ctx context.Context, wallet string) (*ConnectResult, error)

	// Profile returns the profile for wallet, or nil when none is
	// registered or wallet is empty.
	Profile(ctx context.Context, wallet string) (*domain.Profile, error)

	// SelectRole registers wallet with the given role. Unknown roles yield
	// domain.ErrInvalidRole and an already registered wallet yields
	// domain.ErrProfileExists.
	SelectRole(ctx context.Context, wallet, role string) (*domain.Profile, error)

	// PublisherDashboard returns the publisher view: the caller's profile and
	// every video in the system.
	PublisherDashboard(ctx context.Context, wallet string) (*PublisherDashboard, error)

	// AdvertiserDashboard returns the caller's profile, uploads and
	// campaigns. The caller must be an advertiser.
	AdvertiserDashboard(ctx context.Context, wallet string) (*AdvertiserDashboard, error)

	// UploadVideo stores an uploaded file and creates a video owned by the
	// calling advertiser. A missing title or file yields
	// domain.ErrMissingUpload.
	UploadVideo(ctx context.Context, wallet string, upload VideoUpload) (*domain.Video, error)

	// SimulateView credits one synthetic impression. It is deliberately not
	// idempotent and requires no identity.
	SimulateView(ctx context.Context, videoID int64) (*ViewResult, error)

	// AddETH deposits amount into the caller's balance and returns the new
	// balance. Amounts are not checked for sign.
	AddETH(ctx context.Context, wallet string, amount decimal.Decimal) (decimal.Decimal, error)

	// CreateCampaign funds a campaign against any video from the calling
	// advertiser's balance.
	CreateCampaign(ctx context.Context, wallet string, videoID int64, budget decimal.Decimal) (*CampaignResult, error)
}

// ConnectResult describes a freshly declared wallet.
type ConnectResult struct {
	Wallet      string
	HasProfile  bool
	Role        domain.Role
	RedirectURL string
}

// PublisherDashboard is the data behind the publisher page.
type PublisherDashboard struct {
	Profile domain.Profile
	Videos  []domain.Video
}

// AdvertiserDashboard is the data behind the advertiser page.
type AdvertiserDashboard struct {
	Profile   domain.Profile
	Videos    []domain.Video
	Campaigns []domain.Campaign
}

// VideoUpload carries a submitted video. File is nil when no file was sent.
type VideoUpload struct {
	Title    string
	Filename string
	File     io.Reader
}

// CampaignResult is returned after a campaign was funded.
type CampaignResult struct {
	Campaign   domain.Campaign
	NewBalance decimal.Decimal
}
