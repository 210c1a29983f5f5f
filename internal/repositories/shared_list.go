package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/moviefavs/backend/internal/logger"
	"github.com/moviefavs/backend/internal/models"
)

// SharedListReadRepository handles share link lookups.
type SharedListReadRepository struct {
	db *sqlx.DB
}

func NewSharedListReadRepository(db *sqlx.DB) *SharedListReadRepository {
	return &SharedListReadRepository{db: db}
}

// GetByToken resolves a live share token to its link and owner username.
// Expired tokens and tokens that were never issued are both reported as nil,
// so a caller cannot tell whether a token once existed.
func (r *SharedListReadRepository) GetByToken(ctx context.Context, shareToken string) (*models.SharedListWithOwnerDB, error) {
	const query = `
		SELECT s.id, s.user_id, s.share_token, s.created_at, s.expires_at, u.username
		FROM shared_lists s
		JOIN users u ON s.user_id = u.id
		WHERE s.share_token = $1 AND (s.expires_at IS NULL OR s.expires_at > NOW())
	`

	var link models.SharedListWithOwnerDB
	err := r.db.GetContext(ctx, &link, query, shareToken)

	logger.Log.Infow("share link read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{shareToken},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListByUser returns all of the user's share links, newest first, including
// expired ones. Expiry is left for the caller to present.
func (r *SharedListReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.SharedListDB, error) {
	const query = `
		SELECT id, user_id, share_token, created_at, expires_at
		FROM shared_lists
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	links := []models.SharedListDB{}
	err := r.db.SelectContext(ctx, &links, query, userID)

	logger.Log.Infow("share links list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(links),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return links, nil
}

// SharedListWriteRepository handles share link writes.
type SharedListWriteRepository struct {
	db *sqlx.DB
}

func NewSharedListWriteRepository(db *sqlx.DB) *SharedListWriteRepository {
	return &SharedListWriteRepository{db: db}
}

// Save inserts a share link and returns the created row.
func (r *SharedListWriteRepository) Save(ctx context.Context, userID int64, shareToken string, expiresAt *time.Time) (*models.SharedListDB, error) {
	const query = `
		INSERT INTO shared_lists (user_id, share_token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, share_token, created_at, expires_at
	`

	var link models.SharedListDB
	err := r.db.GetContext(ctx, &link, query, userID, shareToken, expiresAt)

	logger.Log.Infow("share link insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, shareToken, expiresAt},
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// UpdateExpiration overwrites the link's expiration and returns the updated
// row, or nil for an unknown token. Ownership is not checked here; pushing
// an expired link's expiry back into the future re-activates it.
func (r *SharedListWriteRepository) UpdateExpiration(ctx context.Context, shareToken string, expiresAt time.Time) (*models.SharedListDB, error) {
	const query = `
		UPDATE shared_lists
		SET expires_at = $1
		WHERE share_token = $2
		RETURNING id, user_id, share_token, created_at, expires_at
	`

	var link models.SharedListDB
	err := r.db.GetContext(ctx, &link, query, expiresAt, shareToken)

	logger.Log.Infow("share link expiration update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{expiresAt, shareToken},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Delete removes the link matching both token and owning user, returning the
// removed row or nil. Requiring the user id means a correct token alone is
// not enough to revoke someone else's link.
func (r *SharedListWriteRepository) Delete(ctx context.Context, shareToken string, userID int64) (*models.SharedListDB, error) {
	const query = `
		DELETE FROM shared_lists
		WHERE share_token = $1 AND user_id = $2
		RETURNING id, user_id, share_token, created_at, expires_at
	`

	var link models.SharedListDB
	err := r.db.GetContext(ctx, &link, query, shareToken, userID)

	logger.Log.Infow("share link delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{shareToken, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// PurgeExpired bulk-deletes links whose expiration has passed and returns
// them. Read-path correctness does not depend on this; GetByToken already
// filters expired rows.
func (r *SharedListWriteRepository) PurgeExpired(ctx context.Context) ([]models.SharedListDB, error) {
	const query = `
		DELETE FROM shared_lists
		WHERE expires_at < NOW()
		RETURNING id, user_id, share_token, created_at, expires_at
	`

	links := []models.SharedListDB{}
	err := r.db.SelectContext(ctx, &links, query)

	logger.Log.Infow("share links purge",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(links),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return links, nil
}
