package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Click struct {
	ID        string
	ASIN      string
	Tag       string
	Referrer  string
	UserAgent string
	ClickedAt time.Time
}

type ClickRepository struct {
	DB *pgxpool.Pool
}

func (r *ClickRepository) Record(ctx context.Context, c Click) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO outbound_clicks
		(id, asin, tag, referrer, user_agent, clicked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.ASIN, c.Tag, c.Referrer, c.UserAgent, c.ClickedAt)
	return err
}
