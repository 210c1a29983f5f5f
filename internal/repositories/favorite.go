package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/moviefavs/backend/internal/logger"
	"github.com/moviefavs/backend/internal/models"
)

// FavoriteReadRepository handles favorite lookups and aggregates.
type FavoriteReadRepository struct {
	db *sqlx.DB
}

func NewFavoriteReadRepository(db *sqlx.DB) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db}
}

// ListByUser returns the user's favorites, most recently added first.
func (r *FavoriteReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.FavoriteDB, error) {
	const query = `
		SELECT id, user_id, movie_id, movie_title, movie_poster,
		       movie_rating, movie_release_date, movie_overview, added_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY added_at DESC
	`

	favorites := []models.FavoriteDB{}
	err := r.db.SelectContext(ctx, &favorites, query, userID)

	logger.Log.Infow("favorites list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(favorites),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// Get returns the favorite for the (user, movie) pair, or nil when absent.
func (r *FavoriteReadRepository) Get(ctx context.Context, userID, movieID int64) (*models.FavoriteDB, error) {
	const query = `
		SELECT id, user_id, movie_id, movie_title, movie_poster,
		       movie_rating, movie_release_date, movie_overview, added_at
		FROM favorites
		WHERE user_id = $1 AND movie_id = $2
	`

	var favorite models.FavoriteDB
	err := r.db.GetContext(ctx, &favorite, query, userID, movieID)

	logger.Log.Infow("favorite check",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, movieID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// ListByShareToken returns the favorites reachable through a live share
// token. The expiry check lives in the same statement as the read so a link
// cannot expire between check and read. Unknown and expired tokens both
// yield an empty list.
func (r *FavoriteReadRepository) ListByShareToken(ctx context.Context, shareToken string) ([]models.FavoriteDB, error) {
	const query = `
		SELECT f.id, f.user_id, f.movie_id, f.movie_title, f.movie_poster,
		       f.movie_rating, f.movie_release_date, f.movie_overview, f.added_at
		FROM favorites f
		JOIN users u ON f.user_id = u.id
		JOIN shared_lists s ON u.id = s.user_id
		WHERE s.share_token = $1 AND (s.expires_at IS NULL OR s.expires_at > NOW())
		ORDER BY f.added_at DESC
	`

	favorites := []models.FavoriteDB{}
	err := r.db.SelectContext(ctx, &favorites, query, shareToken)

	logger.Log.Infow("favorites by share token",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{shareToken},
		"result", len(favorites),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// Stats returns the favorite count and average snapshot rating for a user.
// COALESCE keeps the average at 0 when the user has no favorites.
func (r *FavoriteReadRepository) Stats(ctx context.Context, userID int64) (*models.FavoriteStatsDB, error) {
	const query = `
		SELECT COUNT(*) AS total_count,
		       COALESCE(AVG(movie_rating), 0) AS avg_rating
		FROM favorites
		WHERE user_id = $1
	`

	var stats models.FavoriteStatsDB
	err := r.db.GetContext(ctx, &stats, query, userID)

	logger.Log.Infow("favorites stats",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", stats,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// FavoriteWriteRepository handles favorite inserts and deletes.
type FavoriteWriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteWriteRepository(db *sqlx.DB) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db}
}

// Save inserts a favorite with its movie snapshot and returns the created
// row. Re-adding the same movie yields ErrDuplicateKey; the unique index on
// (user_id, movie_id) makes the check atomic at the engine.
func (r *FavoriteWriteRepository) Save(ctx context.Context, userID int64, movie models.MovieSnapshot) (*models.FavoriteDB, error) {
	const query = `
		INSERT INTO favorites (user_id, movie_id, movie_title, movie_poster,
		                       movie_rating, movie_release_date, movie_overview)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, movie_id, movie_title, movie_poster,
		          movie_rating, movie_release_date, movie_overview, added_at
	`
	args := []any{userID, movie.ID, movie.Title, movie.Poster, movie.Rating, movie.ReleaseDate, movie.Overview}

	var favorite models.FavoriteDB
	err := r.db.GetContext(ctx, &favorite, query, args...)

	logger.Log.Infow("favorite insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// Delete removes the (user, movie) favorite and returns the removed row,
// or nil when the movie was not favorited.
func (r *FavoriteWriteRepository) Delete(ctx context.Context, userID, movieID int64) (*models.FavoriteDB, error) {
	const query = `
		DELETE FROM favorites
		WHERE user_id = $1 AND movie_id = $2
		RETURNING id, user_id, movie_id, movie_title, movie_poster,
		          movie_rating, movie_release_date, movie_overview, added_at
	`

	var favorite models.FavoriteDB
	err := r.db.GetContext(ctx, &favorite, query, userID, movieID)

	logger.Log.Infow("favorite delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, movieID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}
