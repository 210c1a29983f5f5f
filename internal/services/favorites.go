package services

import (
	"context"
	"errors"

	"github.com/moviefavs/backend/internal/logger"
	"github.com/moviefavs/backend/internal/models"
	"github.com/moviefavs/backend/internal/repositories"
)

// Error variables
var (
	ErrDuplicateFavorite = errors.New("movie is already in the favorites list")
	ErrFavoriteNotFound  = errors.New("movie not found in the favorites list")
)

// FavoriteReader defines read operations for favorites.
type FavoriteReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.FavoriteDB, error)
	Get(ctx context.Context, userID, movieID int64) (*models.FavoriteDB, error)
	Stats(ctx context.Context, userID int64) (*models.FavoriteStatsDB, error)
}

// FavoriteWriter defines write operations for favorites.
type FavoriteWriter interface {
	Save(ctx context.Context, userID int64, movie models.MovieSnapshot) (*models.FavoriteDB, error)
	Delete(ctx context.Context, userID, movieID int64) (*models.FavoriteDB, error)
}

// FavoritesService manages a user's favorite movies.
type FavoritesService struct {
	users  UserReader
	reader FavoriteReader
	writer FavoriteWriter
}

// NewFavoritesService creates a new FavoritesService instance.
func NewFavoritesService(users UserReader, reader FavoriteReader, writer FavoriteWriter) *FavoritesService {
	return &FavoritesService{users: users, reader: reader, writer: writer}
}

// Add pins a movie snapshot to the user's list. Adding an already-favorited
// movie is a conflict, not an upsert.
func (svc *FavoritesService) Add(ctx context.Context, username string, movie models.MovieSnapshot) (*models.FavoriteDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	favorite, err := svc.writer.Save(ctx, user.ID, movie)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		logger.Log.Errorw("movie already favorited", "username", username, "movie_id", movie.ID)
		return nil, ErrDuplicateFavorite
	}
	if err != nil {
		logger.Log.Errorw("failed to save favorite", "err", err)
		return nil, err
	}

	return favorite, nil
}

// Remove deletes the favorite and returns the removed record.
func (svc *FavoritesService) Remove(ctx context.Context, username string, movieID int64) (*models.FavoriteDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	favorite, err := svc.writer.Delete(ctx, user.ID, movieID)
	if err != nil {
		logger.Log.Errorw("failed to delete favorite", "err", err)
		return nil, err
	}
	if favorite == nil {
		return nil, ErrFavoriteNotFound
	}

	return favorite, nil
}

// List returns the user's favorites newest-first together with aggregate
// stats over the stored snapshot ratings.
func (svc *FavoritesService) List(ctx context.Context, username string) ([]models.FavoriteDB, *models.FavoriteStatsDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	favorites, err := svc.reader.ListByUser(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to list favorites", "err", err)
		return nil, nil, err
	}

	stats, err := svc.reader.Stats(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to read favorite stats", "err", err)
		return nil, nil, err
	}

	return favorites, stats, nil
}

// Check probes whether the movie is in the user's list. An unknown user is
// not an error here: the probe simply reports not-favorited.
func (svc *FavoritesService) Check(ctx context.Context, username string, movieID int64) (*models.FavoriteDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	favorite, err := svc.reader.Get(ctx, user.ID, movieID)
	if err != nil {
		logger.Log.Errorw("failed to check favorite", "err", err)
		return nil, err
	}

	return favorite, nil
}
