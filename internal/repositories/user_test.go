package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func userColumns() []string {
	return []string{"id", "username", "password_hash", "created_at"}
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	createdAt := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, created_at")).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(int64(1), "alice", "hash", createdAt))

		user, err := repo.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("not found is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, created_at")).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := repo.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, created_at")).
			WithArgs("alice").
			WillReturnError(errors.New("db error"))

		user, err := repo.GetByUsername(ctx, "alice")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(int64(7), "bob", "", time.Now()))

		user, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "bob", user.Username)
		assert.True(t, user.NeedsPassword())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := repo.GetByID(ctx, 8)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	t.Run("inserts and returns the row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password_hash)")).
			WithArgs("alice", "hash").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(int64(1), "alice", "hash", time.Now()))

		user, err := repo.Save(ctx, "alice", "hash")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("taken username maps to ErrDuplicateKey", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password_hash)")).
			WithArgs("alice", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user, err := repo.Save(ctx, "alice", "hash")
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdatePassword(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	t.Run("updates the hash", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
			WithArgs("newhash", int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdatePassword(ctx, 7, "newhash"))
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
			WithArgs("newhash", int64(7)).
			WillReturnError(errors.New("db error"))

		assert.Error(t, repo.UpdatePassword(ctx, 7, "newhash"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
