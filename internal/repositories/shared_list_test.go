package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sharedListColumns() []string {
	return []string{"id", "user_id", "share_token", "created_at", "expires_at"}
}

func TestSharedListReadRepository_GetByToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSharedListReadRepository(db)
	ctx := context.Background()

	now := time.Now()
	expiresAt := now.AddDate(0, 0, 30)

	t.Run("live token resolves with owner username", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON s.user_id = u.id")).
			WithArgs("token-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "share_token", "created_at", "expires_at", "username"}).
				AddRow(int64(5), int64(1), "token-1", now, expiresAt, "alice"))

		link, err := repo.GetByToken(ctx, "token-1")
		assert.NoError(t, err)
		require.NotNil(t, link)
		assert.Equal(t, "token-1", link.ShareToken)
		assert.Equal(t, "alice", link.Username)
	})

	t.Run("expired or unknown token is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON s.user_id = u.id")).
			WithArgs("token-2").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "share_token", "created_at", "expires_at", "username"}))

		link, err := repo.GetByToken(ctx, "token-2")
		assert.NoError(t, err)
		assert.Nil(t, link)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSharedListReadRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSharedListReadRepository(db)
	ctx := context.Background()

	now := time.Now()
	past := now.AddDate(0, 0, -1)

	t.Run("includes expired links", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(sharedListColumns()).
				AddRow(int64(6), int64(1), "token-live", now, now.AddDate(0, 0, 30)).
				AddRow(int64(5), int64(1), "token-dead", now.Add(-time.Hour), past))

		links, err := repo.ListByUser(ctx, 1)
		assert.NoError(t, err)
		require.Len(t, links, 2)
		assert.False(t, links[0].IsExpired(now))
		assert.True(t, links[1].IsExpired(now))
	})

	t.Run("no links yields empty slice", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(sharedListColumns()))

		links, err := repo.ListByUser(ctx, 2)
		assert.NoError(t, err)
		assert.Empty(t, links)
		assert.NotNil(t, links)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSharedListWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSharedListWriteRepository(db)
	ctx := context.Background()

	expiresAt := time.Now().AddDate(0, 0, 30)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO shared_lists (user_id, share_token, expires_at)")).
		WithArgs(int64(1), "token-1", &expiresAt).
		WillReturnRows(sqlmock.NewRows(sharedListColumns()).
			AddRow(int64(5), int64(1), "token-1", time.Now(), expiresAt))

	link, err := repo.Save(ctx, 1, "token-1", &expiresAt)
	assert.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, "token-1", link.ShareToken)
	require.NotNil(t, link.ExpiresAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSharedListWriteRepository_UpdateExpiration(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSharedListWriteRepository(db)
	ctx := context.Background()

	expiresAt := time.Now().AddDate(0, 0, 14)

	t.Run("returns the updated row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE shared_lists")).
			WithArgs(expiresAt, "token-1").
			WillReturnRows(sqlmock.NewRows(sharedListColumns()).
				AddRow(int64(5), int64(1), "token-1", time.Now(), expiresAt))

		link, err := repo.UpdateExpiration(ctx, "token-1", expiresAt)
		assert.NoError(t, err)
		require.NotNil(t, link)
		require.NotNil(t, link.ExpiresAt)
		assert.WithinDuration(t, expiresAt, *link.ExpiresAt, time.Second)
	})

	t.Run("unknown token is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE shared_lists")).
			WithArgs(expiresAt, "token-2").
			WillReturnRows(sqlmock.NewRows(sharedListColumns()))

		link, err := repo.UpdateExpiration(ctx, "token-2", expiresAt)
		assert.NoError(t, err)
		assert.Nil(t, link)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSharedListWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSharedListWriteRepository(db)
	ctx := context.Background()

	t.Run("token and owner match", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM shared_lists")).
			WithArgs("token-1", int64(1)).
			WillReturnRows(sqlmock.NewRows(sharedListColumns()).
				AddRow(int64(5), int64(1), "token-1", time.Now(), nil))

		link, err := repo.Delete(ctx, "token-1", 1)
		assert.NoError(t, err)
		require.NotNil(t, link)
		assert.Equal(t, "token-1", link.ShareToken)
	})

	t.Run("token owned by someone else deletes nothing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM shared_lists")).
			WithArgs("token-1", int64(2)).
			WillReturnRows(sqlmock.NewRows(sharedListColumns()))

		link, err := repo.Delete(ctx, "token-1", 2)
		assert.NoError(t, err)
		assert.Nil(t, link)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM shared_lists")).
			WithArgs("token-1", int64(1)).
			WillReturnError(errors.New("db error"))

		link, err := repo.Delete(ctx, "token-1", 1)
		assert.Error(t, err)
		assert.Nil(t, link)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSharedListWriteRepository_PurgeExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSharedListWriteRepository(db)
	ctx := context.Background()

	past := time.Now().AddDate(0, 0, -1)

	t.Run("returns purged rows", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE expires_at < NOW()")).
			WillReturnRows(sqlmock.NewRows(sharedListColumns()).
				AddRow(int64(3), int64(1), "token-dead", past.Add(-time.Hour), past))

		links, err := repo.PurgeExpired(ctx)
		assert.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "token-dead", links[0].ShareToken)
	})

	t.Run("nothing expired yields empty slice", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE expires_at < NOW()")).
			WillReturnRows(sqlmock.NewRows(sharedListColumns()))

		links, err := repo.PurgeExpired(ctx)
		assert.NoError(t, err)
		assert.Empty(t, links)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
