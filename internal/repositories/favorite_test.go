package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviefavs/backend/internal/models"
)

func favoriteColumns() []string {
	return []string{
		"id", "user_id", "movie_id", "movie_title", "movie_poster",
		"movie_rating", "movie_release_date", "movie_overview", "added_at",
	}
}

func TestFavoriteReadRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteReadRepository(db)
	ctx := context.Background()

	now := time.Now()
	poster := "https://image.tmdb.org/t/p/w500/matrix.jpg"
	release := time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("returns rows newest first", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY added_at DESC")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(favoriteColumns()).
				AddRow(int64(11), int64(1), int64(603), "The Matrix", poster, 8.2, release, "A hacker learns the truth.", now).
				AddRow(int64(10), int64(1), int64(2), "Ariel", nil, 7.1, nil, "", now.Add(-time.Hour)))

		favorites, err := repo.ListByUser(ctx, 1)
		assert.NoError(t, err)
		require.Len(t, favorites, 2)
		assert.Equal(t, "The Matrix", favorites[0].MovieTitle)
		require.NotNil(t, favorites[0].MoviePoster)
		assert.Equal(t, poster, *favorites[0].MoviePoster)
		assert.Nil(t, favorites[1].MoviePoster)
		assert.Nil(t, favorites[1].MovieReleaseDate)
	})

	t.Run("no favorites yields empty slice", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY added_at DESC")).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(favoriteColumns()))

		favorites, err := repo.ListByUser(ctx, 2)
		assert.NoError(t, err)
		assert.Empty(t, favorites)
		assert.NotNil(t, favorites)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteReadRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteReadRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND movie_id = $2")).
			WithArgs(int64(1), int64(603)).
			WillReturnRows(sqlmock.NewRows(favoriteColumns()).
				AddRow(int64(11), int64(1), int64(603), "The Matrix", nil, 8.2, nil, "", time.Now()))

		favorite, err := repo.Get(ctx, 1, 603)
		assert.NoError(t, err)
		require.NotNil(t, favorite)
		assert.Equal(t, int64(603), favorite.MovieID)
	})

	t.Run("absent is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND movie_id = $2")).
			WithArgs(int64(1), int64(604)).
			WillReturnRows(sqlmock.NewRows(favoriteColumns()))

		favorite, err := repo.Get(ctx, 1, 604)
		assert.NoError(t, err)
		assert.Nil(t, favorite)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteReadRepository_ListByShareToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteReadRepository(db)
	ctx := context.Background()

	t.Run("live token returns the owner's favorites", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("JOIN shared_lists s ON u.id = s.user_id")).
			WithArgs("token-1").
			WillReturnRows(sqlmock.NewRows(favoriteColumns()).
				AddRow(int64(11), int64(1), int64(603), "The Matrix", nil, 8.2, nil, "", time.Now()))

		favorites, err := repo.ListByShareToken(ctx, "token-1")
		assert.NoError(t, err)
		require.Len(t, favorites, 1)
		assert.Equal(t, "The Matrix", favorites[0].MovieTitle)
	})

	t.Run("expired or unknown token yields empty slice", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("JOIN shared_lists s ON u.id = s.user_id")).
			WithArgs("token-2").
			WillReturnRows(sqlmock.NewRows(favoriteColumns()))

		favorites, err := repo.ListByShareToken(ctx, "token-2")
		assert.NoError(t, err)
		assert.Empty(t, favorites)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteReadRepository_Stats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteReadRepository(db)
	ctx := context.Background()

	t.Run("aggregates over snapshot ratings", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE(AVG(movie_rating), 0)")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"total_count", "avg_rating"}).
				AddRow(int64(2), 7.65))

		stats, err := repo.Stats(ctx, 1)
		assert.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, int64(2), stats.TotalCount)
		assert.InDelta(t, 7.65, stats.AvgRating, 0.001)
	})

	t.Run("empty list averages to zero", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE(AVG(movie_rating), 0)")).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"total_count", "avg_rating"}).
				AddRow(int64(0), 0.0))

		stats, err := repo.Stats(ctx, 2)
		assert.NoError(t, err)
		require.NotNil(t, stats)
		assert.Zero(t, stats.TotalCount)
		assert.Zero(t, stats.AvgRating)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteWriteRepository(db)
	ctx := context.Background()

	release := "1999-03-31"
	movie := models.MovieSnapshot{
		ID:          603,
		Title:       "The Matrix",
		Rating:      8.2,
		ReleaseDate: &release,
		Overview:    "A hacker learns the truth.",
	}

	t.Run("inserts the snapshot and returns the row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO favorites")).
			WithArgs(int64(1), movie.ID, movie.Title, movie.Poster, movie.Rating, movie.ReleaseDate, movie.Overview).
			WillReturnRows(sqlmock.NewRows(favoriteColumns()).
				AddRow(int64(11), int64(1), int64(603), "The Matrix", nil, 8.2,
					time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC), "A hacker learns the truth.", time.Now()))

		favorite, err := repo.Save(ctx, 1, movie)
		assert.NoError(t, err)
		require.NotNil(t, favorite)
		assert.Equal(t, int64(603), favorite.MovieID)
	})

	t.Run("re-adding maps to ErrDuplicateKey", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO favorites")).
			WithArgs(int64(1), movie.ID, movie.Title, movie.Poster, movie.Rating, movie.ReleaseDate, movie.Overview).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		favorite, err := repo.Save(ctx, 1, movie)
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.Nil(t, favorite)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteWriteRepository(db)
	ctx := context.Background()

	t.Run("returns the removed row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM favorites")).
			WithArgs(int64(1), int64(603)).
			WillReturnRows(sqlmock.NewRows(favoriteColumns()).
				AddRow(int64(11), int64(1), int64(603), "The Matrix", nil, 8.2, nil, "", time.Now()))

		favorite, err := repo.Delete(ctx, 1, 603)
		assert.NoError(t, err)
		require.NotNil(t, favorite)
		assert.Equal(t, "The Matrix", favorite.MovieTitle)
	})

	t.Run("absent favorite is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM favorites")).
			WithArgs(int64(1), int64(604)).
			WillReturnRows(sqlmock.NewRows(favoriteColumns()))

		favorite, err := repo.Delete(ctx, 1, 604)
		assert.NoError(t, err)
		assert.Nil(t, favorite)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM favorites")).
			WithArgs(int64(1), int64(603)).
			WillReturnError(errors.New("db error"))

		favorite, err := repo.Delete(ctx, 1, 603)
		assert.Error(t, err)
		assert.Nil(t, favorite)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
