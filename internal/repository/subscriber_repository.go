package repository

import (
	"database/sql"
	"time"
)

type Subscriber struct {
	ID           string
	Email        string
	SubscribedAt time.Time
}

type SubscriberRepository struct {
	DB *sql.DB
}

// Save upserts by email: re-subscribing reactivates the address instead of
// duplicating the row.
func (r *SubscriberRepository) Save(s Subscriber) error {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM newsletter_subscribers WHERE email = $1)", s.Email).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		_, err = r.DB.Exec(`
			UPDATE newsletter_subscribers
			SET subscribed_at = $1, active = true
			WHERE email = $2
		`, s.SubscribedAt, s.Email)
	} else {
		_, err = r.DB.Exec(`
			INSERT INTO newsletter_subscribers
			(id, email, subscribed_at, active)
			VALUES ($1, $2, $3, true)
		`, s.ID, s.Email, s.SubscribedAt)
	}

	return err
}
