package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

// PostgreSQL error codes the repository translates into domain errors.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

const (
	profileColumns  = `id, wallet_address, role, eth_balance, token_balance, created_at`
	videoColumns    = `id, publisher_id, title, video_file, impressions, earnings_eth, earnings_tokens, uploaded_at`
	campaignColumns = `id, advertiser_id, video_id, budget_eth, spent_eth, views, created_at`
)

// MarketRepository implements port.MarketRepository using pgxpool for
// PostgreSQL. Balances are only ever changed with relative SQL updates or
// under a row lock, so concurrent requests cannot overwrite each other.
type MarketRepository struct {
	pool *pgxpool.Pool
}

// NewMarketRepository returns a new repository instance.
func NewMarketRepository(pool *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{pool: pool}
}

// GetProfileByWallet returns the profile of wallet or nil.
func (r *MarketRepository) GetProfileByWallet(ctx context.Context, wallet string) (*domain.Profile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE wallet_address = $1`, wallet))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProfile inserts a profile. The unique wallet constraint turns a
// second registration into domain.ErrProfileExists.
func (r *MarketRepository) CreateProfile(ctx context.Context, p *domain.Profile) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO user_profiles (wallet_address, role, eth_balance, token_balance)
VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		p.WalletAddress, string(p.Role), p.ETHBalance, p.TokenBalance,
	).Scan(&p.ID, &p.CreatedAt)
	if isPgError(err, uniqueViolation) {
		return domain.ErrProfileExists
	}
	return err
}

// CreditProfile adds eth and tokens to a profile in a single statement.
func (r *MarketRepository) CreditProfile(ctx context.Context, profileID int64, eth, tokens decimal.Decimal) (*domain.Profile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx,
		`UPDATE user_profiles
SET eth_balance = eth_balance + $2, token_balance = token_balance + $3
WHERE id = $1
RETURNING `+profileColumns,
		profileID, eth, tokens))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateVideo inserts a video with zero counters.
func (r *MarketRepository) CreateVideo(ctx context.Context, v *domain.Video) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO videos (publisher_id, title, video_file)
VALUES ($1, $2, $3)
RETURNING id, impressions, earnings_eth, earnings_tokens, uploaded_at`,
		v.PublisherID, v.Title, v.VideoFile,
	).Scan(&v.ID, &v.Impressions, &v.EarningsETH, &v.EarningsTokens, &v.UploadedAt)
}

// GetVideo returns a video by id or nil.
func (r *MarketRepository) GetVideo(ctx context.Context, id int64) (*domain.Video, error) {
	v, err := scanVideo(r.pool.QueryRow(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ListVideos returns all videos, newest first.
func (r *MarketRepository) ListVideos(ctx context.Context) ([]domain.Video, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+videoColumns+` FROM videos ORDER BY uploaded_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectVideo)
}

// ListVideosByOwner returns the videos uploaded by profileID, newest first.
func (r *MarketRepository) ListVideosByOwner(ctx context.Context, profileID int64) ([]domain.Video, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE publisher_id = $1 ORDER BY uploaded_at DESC, id DESC`, profileID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectVideo)
}

// RecordView increments the video counters and credits its owner inside
// one transaction.
func (r *MarketRepository) RecordView(ctx context.Context, videoID int64, eth, tokens decimal.Decimal) (res *port.ViewResult, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	v, err := scanVideo(tx.QueryRow(ctx,
		`UPDATE videos
SET impressions = impressions + 1, earnings_eth = earnings_eth + $2, earnings_tokens = earnings_tokens + $3
WHERE id = $1
RETURNING `+videoColumns,
		videoID, eth, tokens))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrVideoNotFound
	}
	if err != nil {
		return nil, err
	}

	p, err := scanProfile(tx.QueryRow(ctx,
		`UPDATE user_profiles
SET eth_balance = eth_balance + $2, token_balance = token_balance + $3
WHERE id = $1
RETURNING `+profileColumns,
		v.PublisherID, eth, tokens))
	if err != nil {
		return nil, err
	}
	return &port.ViewResult{Video: *v, Publisher: *p}, nil
}

// CreateCampaign locks the advertiser row, checks the balance, inserts the
// campaign and debits the budget.
func (r *MarketRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) (balance decimal.Decimal, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return decimal.Zero, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// lock advertiser
	err = tx.QueryRow(ctx, `SELECT eth_balance FROM user_profiles WHERE id = $1 FOR UPDATE`, c.AdvertiserID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, domain.ErrProfileNotFound
	}
	if err != nil {
		return decimal.Zero, err
	}
	if balance.LessThan(c.BudgetETH) {
		return balance, domain.ErrInsufficientBalance
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO campaigns (advertiser_id, video_id, budget_eth)
VALUES ($1, $2, $3)
RETURNING id, spent_eth, views, created_at`,
		c.AdvertiserID, c.VideoID, c.BudgetETH,
	).Scan(&c.ID, &c.SpentETH, &c.Views, &c.CreatedAt)
	if isPgError(err, foreignKeyViolation) {
		return decimal.Zero, domain.ErrVideoNotFound
	}
	if err != nil {
		return decimal.Zero, err
	}

	err = tx.QueryRow(ctx,
		`UPDATE user_profiles SET eth_balance = eth_balance - $2 WHERE id = $1 RETURNING eth_balance`,
		c.AdvertiserID, c.BudgetETH,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// ListCampaignsByAdvertiser returns the campaigns funded by profileID,
// newest first.
func (r *MarketRepository) ListCampaignsByAdvertiser(ctx context.Context, profileID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE advertiser_id = $1 ORDER BY created_at DESC, id DESC`, profileID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.AdvertiserID, &c.VideoID, &c.BudgetETH, &c.SpentETH, &c.Views, &c.CreatedAt)
		return c, err
	})
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p    domain.Profile
		role string
	)
	if err := row.Scan(&p.ID, &p.WalletAddress, &role, &p.ETHBalance, &p.TokenBalance, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Role = domain.Role(role)
	return &p, nil
}

func scanVideo(row pgx.Row) (*domain.Video, error) {
	var v domain.Video
	err := row.Scan(&v.ID, &v.PublisherID, &v.Title, &v.VideoFile, &v.Impressions, &v.EarningsETH, &v.EarningsTokens, &v.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectVideo(row pgx.CollectableRow) (domain.Video, error) {
	v, err := scanVideo(row)
	if err != nil {
		return domain.Video{}, err
	}
	return *v, nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
