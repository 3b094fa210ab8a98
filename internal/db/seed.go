package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
)

// Demo wallets created by Seed.
const (
	DemoPublisherWallet  = "0x1111111111111111111111111111111111111111"
	DemoAdvertiserWallet = "0x2222222222222222222222222222222222222222"
)

const demoVideos = 3

// Seed inserts a demo publisher, a funded demo advertiser and a few videos
// owned by the advertiser. Rows that already exist are left untouched, so
// calling it on every start is safe.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	profiles := []struct {
		wallet string
		role   domain.Role
		eth    decimal.Decimal
	}{
		{DemoPublisherWallet, domain.RolePublisher, decimal.Zero},
		{DemoAdvertiserWallet, domain.RoleAdvertiser, decimal.NewFromInt(10)},
	}

	var advertiserID int64
	for _, p := range profiles {
		_, err := db.Exec(ctx, `INSERT INTO user_profiles (wallet_address, role, eth_balance)
VALUES ($1, $2, $3) ON CONFLICT (wallet_address) DO NOTHING`,
			p.wallet, string(p.role), p.eth)
		if err != nil {
			return fmt.Errorf("seed profile %s: %w", p.wallet, err)
		}
		if p.role != domain.RoleAdvertiser {
			continue
		}
		err = db.QueryRow(ctx, `SELECT id FROM user_profiles WHERE wallet_address = $1`, p.wallet).Scan(&advertiserID)
		if err != nil {
			return fmt.Errorf("seed profile %s: %w", p.wallet, err)
		}
	}

	var existing int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM videos WHERE publisher_id = $1`, advertiserID).Scan(&existing); err != nil {
		return err
	}
	for i := existing + 1; i <= demoVideos; i++ {
		title := fmt.Sprintf("Demo video %d", i)
		file := fmt.Sprintf("videos/%s.mp4", uuid.NewString())
		_, err := db.Exec(ctx, `INSERT INTO videos (publisher_id, title, video_file) VALUES ($1, $2, $3)`,
			advertiserID, title, file)
		if err != nil {
			return fmt.Errorf("seed video %d: %w", i, err)
		}
	}
	return nil
}
