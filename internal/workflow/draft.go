package workflow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"crewlink/shared/timezone"
)

// Draft is an unsubmitted review kept locally per booking, so a failed or
// interrupted submission does not lose the user's text.
type Draft struct {
	BookingID string    `db:"booking_id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	Rating    int       `db:"rating"`
	SavedAt   time.Time `db:"saved_at"`
}

type DraftStore interface {
	Save(ctx context.Context, draft Draft) error
	Load(ctx context.Context, bookingID string) (*Draft, error)
	Discard(ctx context.Context, bookingID string) error
}

type draftStoreImpl struct {
	db *sqlx.DB
}

func NewDraftStore(db *sqlx.DB) DraftStore {
	return &draftStoreImpl{db: db}
}

func (s *draftStoreImpl) Save(ctx context.Context, draft Draft) error {
	draft.SavedAt = timezone.Now()

	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO review_drafts (booking_id, title, body, rating, saved_at)
		 VALUES (:booking_id, :title, :body, :rating, :saved_at)
		 ON CONFLICT (booking_id) DO UPDATE SET
		   title = excluded.title,
		   body = excluded.body,
		   rating = excluded.rating,
		   saved_at = excluded.saved_at`,
		draft,
	)
	if err != nil {
		log.Error().Err(err).Str("bookingId", draft.BookingID).Msg("failed to save review draft")

		return fmt.Errorf("failed to save review draft: %w", err)
	}

	return nil
}

func (s *draftStoreImpl) Load(ctx context.Context, bookingID string) (*Draft, error) {
	var draft Draft

	err := s.db.GetContext(ctx, &draft, `SELECT * FROM review_drafts WHERE booking_id = ?`, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to load review draft")

		return nil, fmt.Errorf("failed to load review draft: %w", err)
	}

	return &draft, nil
}

func (s *draftStoreImpl) Discard(ctx context.Context, bookingID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM review_drafts WHERE booking_id = ?`, bookingID)
	if err != nil {
		return fmt.Errorf("failed to discard review draft: %w", err)
	}

	return nil
}
