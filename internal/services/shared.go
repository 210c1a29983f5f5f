package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/moviefavs/backend/internal/logger"
	"github.com/moviefavs/backend/internal/models"
)

// Error variables
var (
	ErrShareLinkNotFound = errors.New("share link not found or expired")
)

// DefaultShareExpiresDays is the validity window applied when the caller
// does not choose one.
const DefaultShareExpiresDays = 30

// SharedListReader defines read operations for share links.
type SharedListReader interface {
	GetByToken(ctx context.Context, shareToken string) (*models.SharedListWithOwnerDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.SharedListDB, error)
}

// SharedListWriter defines write operations for share links.
type SharedListWriter interface {
	Save(ctx context.Context, userID int64, shareToken string, expiresAt *time.Time) (*models.SharedListDB, error)
	UpdateExpiration(ctx context.Context, shareToken string, expiresAt time.Time) (*models.SharedListDB, error)
	Delete(ctx context.Context, shareToken string, userID int64) (*models.SharedListDB, error)
	PurgeExpired(ctx context.Context) ([]models.SharedListDB, error)
}

// SharedFavoritesReader resolves a share token to the owner's current
// favorites in one atomic read.
type SharedFavoritesReader interface {
	ListByShareToken(ctx context.Context, shareToken string) ([]models.FavoriteDB, error)
}

// SharedService manages share links over a user's favorites. A link is a
// bearer capability over the live list, not a copy of it.
type SharedService struct {
	users     UserReader
	reader    SharedListReader
	writer    SharedListWriter
	favorites SharedFavoritesReader
	now       func() time.Time
}

// NewSharedService creates a new SharedService instance.
func NewSharedService(users UserReader, reader SharedListReader, writer SharedListWriter, favorites SharedFavoritesReader) *SharedService {
	return &SharedService{
		users:     users,
		reader:    reader,
		writer:    writer,
		favorites: favorites,
		now:       time.Now,
	}
}

// Create mints an unguessable share token for the user's list, valid for
// expiresDays from now. A nil expiresDays applies the default window; a
// non-positive value is accepted as-is and yields an already-expired link.
func (svc *SharedService) Create(ctx context.Context, username string, expiresDays *int) (*models.SharedListDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	days := DefaultShareExpiresDays
	if expiresDays != nil {
		days = *expiresDays
	}
	expiresAt := svc.now().AddDate(0, 0, days)

	link, err := svc.writer.Save(ctx, user.ID, uuid.NewString(), &expiresAt)
	if err != nil {
		logger.Log.Errorw("failed to save share link", "err", err)
		return nil, err
	}

	return link, nil
}

// GetShared resolves a token to its owner and the owner's current favorites.
// Expired and never-issued tokens are indistinguishable to the caller.
func (svc *SharedService) GetShared(ctx context.Context, shareToken string) (*models.SharedListWithOwnerDB, []models.FavoriteDB, error) {
	link, err := svc.reader.GetByToken(ctx, shareToken)
	if err != nil {
		logger.Log.Errorw("failed to resolve share token", "err", err)
		return nil, nil, err
	}
	if link == nil {
		return nil, nil, ErrShareLinkNotFound
	}

	favorites, err := svc.favorites.ListByShareToken(ctx, shareToken)
	if err != nil {
		logger.Log.Errorw("failed to list shared favorites", "err", err)
		return nil, nil, err
	}

	return link, favorites, nil
}

// ListLinks returns all of the user's share links, including expired ones.
func (svc *SharedService) ListLinks(ctx context.Context, username string) ([]models.SharedListDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	links, err := svc.reader.ListByUser(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to list share links", "err", err)
		return nil, err
	}

	return links, nil
}

// UpdateExpiration recomputes the link's expiration as now + expiresDays.
// Pushing an expired link back into the future re-activates it; the row is
// never recreated. The username must resolve but ownership of the token is
// not verified, mirroring the trust boundary of the calling layer.
func (svc *SharedService) UpdateExpiration(ctx context.Context, username, shareToken string, expiresDays int) (*models.SharedListDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	link, err := svc.writer.UpdateExpiration(ctx, shareToken, svc.now().AddDate(0, 0, expiresDays))
	if err != nil {
		logger.Log.Errorw("failed to update share link expiration", "err", err)
		return nil, err
	}
	if link == nil {
		return nil, ErrShareLinkNotFound
	}

	return link, nil
}

// Delete revokes a link. The delete is scoped to the owning user, so a
// token alone is not enough.
func (svc *SharedService) Delete(ctx context.Context, username, shareToken string) (*models.SharedListDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	link, err := svc.writer.Delete(ctx, shareToken, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to delete share link", "err", err)
		return nil, err
	}
	if link == nil {
		return nil, ErrShareLinkNotFound
	}

	return link, nil
}

// PurgeExpired removes links whose expiration has passed. Optional hygiene;
// the read path filters expired links on its own.
func (svc *SharedService) PurgeExpired(ctx context.Context) ([]models.SharedListDB, error) {
	links, err := svc.writer.PurgeExpired(ctx)
	if err != nil {
		logger.Log.Errorw("failed to purge expired share links", "err", err)
		return nil, err
	}
	return links, nil
}
