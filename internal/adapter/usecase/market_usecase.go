package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

// MarketUseCase implements port.MarketUseCase on top of a repository and a
// file store. Balance arithmetic is delegated to the repository so that
// every mutation is applied atomically by the database.
type MarketUseCase struct {
	repo  port.MarketRepository
	files port.FileStore

	// strictWallets requires declared addresses to be well-formed hex
	// addresses and stores them checksummed.
	strictWallets bool
}

// NewMarketUseCase creates a new usecase with the provided repository and
// file store.
func NewMarketUseCase(repo port.MarketRepository, files port.FileStore, strictWallets bool) *MarketUseCase {
	return &MarketUseCase{repo: repo, files: files, strictWallets: strictWallets}
}

// ConnectWallet normalises the declared address and looks up its profile to
// decide where the client goes next.
func (u *MarketUseCase) ConnectWallet(ctx context.Context, wallet string) (*port.ConnectResult, error) {
	addr, err := domain.NormalizeWallet(wallet, u.strictWallets)
	if err != nil {
		return nil, err
	}
	p, err := u.repo.GetProfileByWallet(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return &port.ConnectResult{Wallet: addr, RedirectURL: domain.RegistrationPath}, nil
	}
	return &port.ConnectResult{
		Wallet:      addr,
		HasProfile:  true,
		Role:        p.Role,
		RedirectURL: p.Role.DashboardPath(),
	}, nil
}

// Profile returns the profile for wallet, nil when there is none.
func (u *MarketUseCase) Profile(ctx context.Context, wallet string) (*domain.Profile, error) {
	if wallet == "" {
		return nil, nil
	}
	p, err := u.repo.GetProfileByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// SelectRole creates the one and only profile of wallet.
func (u *MarketUseCase) SelectRole(ctx context.Context, wallet, role string) (*domain.Profile, error) {
	if wallet == "" {
		return nil, domain.ErrNotAuthenticated
	}
	r, ok := domain.ParseRole(role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	p := &domain.Profile{
		WalletAddress: wallet,
		Role:          r,
		ETHBalance:    decimal.Zero,
		TokenBalance:  decimal.Zero,
	}
	if err := u.repo.CreateProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// PublisherDashboard lists every video in the system for a publisher.
func (u *MarketUseCase) PublisherDashboard(ctx context.Context, wallet string) (*port.PublisherDashboard, error) {
	p, err := u.profileWithRole(ctx, wallet, domain.RolePublisher)
	if err != nil {
		return nil, err
	}
	videos, err := u.repo.ListVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return &port.PublisherDashboard{Profile: *p, Videos: videos}, nil
}

// AdvertiserDashboard lists the advertiser's own uploads and campaigns.
func (u *MarketUseCase) AdvertiserDashboard(ctx context.Context, wallet string) (*port.AdvertiserDashboard, error) {
	p, err := u.profileWithRole(ctx, wallet, domain.RoleAdvertiser)
	if err != nil {
		return nil, err
	}
	videos, err := u.repo.ListVideosByOwner(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	campaigns, err := u.repo.ListCampaignsByAdvertiser(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return &port.AdvertiserDashboard{Profile: *p, Videos: videos, Campaigns: campaigns}, nil
}

// UploadVideo stores the file and then records the video under the calling
// advertiser.
func (u *MarketUseCase) UploadVideo(ctx context.Context, wallet string, upload port.VideoUpload) (*domain.Video, error) {
	p, err := u.profileWithRole(ctx, wallet, domain.RoleAdvertiser)
	if err != nil {
		return nil, err
	}
	if upload.Title == "" || upload.File == nil {
		return nil, domain.ErrMissingUpload
	}
	if utf8.RuneCountInString(upload.Title) > domain.MaxTitleLength {
		return nil, domain.ErrTitleTooLong
	}
	ref, err := u.files.Save(ctx, upload.Filename, upload.File)
	if err != nil {
		return nil, fmt.Errorf("store video file: %w", err)
	}
	v := &domain.Video{
		PublisherID:    p.ID,
		Title:          upload.Title,
		VideoFile:      ref,
		EarningsETH:    decimal.Zero,
		EarningsTokens: decimal.Zero,
	}
	if err = u.repo.CreateVideo(ctx, v); err != nil {
		// no record points at the file any more
		if derr := u.files.Delete(ctx, ref); derr != nil {
			err = errors.Join(err, fmt.Errorf("remove orphaned file %s: %w", ref, derr))
		}
		return nil, fmt.Errorf("create video: %w", err)
	}
	return v, nil
}

// SimulateView credits the fixed per-view reward. Every call counts.
func (u *MarketUseCase) SimulateView(ctx context.Context, videoID int64) (*port.ViewResult, error) {
	res, err := u.repo.RecordView(ctx, videoID, domain.ViewRewardETH, domain.ViewRewardTokens)
	if err != nil {
		return nil, fmt.Errorf("record view: %w", err)
	}
	return res, nil
}

// AddETH deposits amount into any registered profile.
func (u *MarketUseCase) AddETH(ctx context.Context, wallet string, amount decimal.Decimal) (decimal.Decimal, error) {
	if wallet == "" {
		return decimal.Zero, domain.ErrNotAuthenticated
	}
	p, err := u.repo.GetProfileByWallet(ctx, wallet)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return decimal.Zero, domain.ErrProfileNotFound
	}
	if !domain.ValidAmount(amount) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	updated, err := u.repo.CreditProfile(ctx, p.ID, domain.RoundETH(amount), decimal.Zero)
	if err != nil {
		return decimal.Zero, fmt.Errorf("credit profile: %w", err)
	}
	return updated.ETHBalance, nil
}

// CreateCampaign funds a campaign on any video. The balance check and the
// debit happen together inside the repository.
func (u *MarketUseCase) CreateCampaign(ctx context.Context, wallet string, videoID int64, budget decimal.Decimal) (*port.CampaignResult, error) {
	p, err := u.profileWithRole(ctx, wallet, domain.RoleAdvertiser)
	if err != nil {
		return nil, err
	}
	if !domain.ValidAmount(budget) {
		return nil, domain.ErrInvalidAmount
	}
	v, err := u.repo.GetVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}
	if v == nil {
		return nil, domain.ErrVideoNotFound
	}
	c := &domain.Campaign{
		AdvertiserID: p.ID,
		VideoID:      v.ID,
		BudgetETH:    domain.RoundETH(budget),
		SpentETH:     decimal.Zero,
	}
	balance, err := u.repo.CreateCampaign(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &port.CampaignResult{Campaign: *c, NewBalance: balance}, nil
}

// profileWithRole resolves the caller's profile and checks its role.
func (u *MarketUseCase) profileWithRole(ctx context.Context, wallet string, role domain.Role) (*domain.Profile, error) {
	if wallet == "" {
		return nil, domain.ErrNotAuthenticated
	}
	p, err := u.repo.GetProfileByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return nil, domain.ErrProfileNotFound
	}
	if p.Role != role {
		return nil, domain.ErrWrongRole
	}
	return p, nil
}
