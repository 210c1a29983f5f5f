package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moviefavs/backend/internal/logger"
	"github.com/moviefavs/backend/internal/models"
	"github.com/moviefavs/backend/internal/services"
)

// ShareCreator defines the interface that the create-share service must
// implement. A nil expiresDays applies the default validity window.
type ShareCreator interface {
	Create(ctx context.Context, username string, expiresDays *int) (*models.SharedListDB, error)
}

// SharedGetter defines the interface that the read-shared service must
// implement.
type SharedGetter interface {
	GetShared(ctx context.Context, shareToken string) (*models.SharedListWithOwnerDB, []models.FavoriteDB, error)
}

// ShareLister defines the interface that the list-own-links service must
// implement.
type ShareLister interface {
	ListLinks(ctx context.Context, username string) ([]models.SharedListDB, error)
}

// ShareUpdater defines the interface that the update-expiration service
// must implement.
type ShareUpdater interface {
	UpdateExpiration(ctx context.Context, username, shareToken string, expiresDays int) (*models.SharedListDB, error)
}

// ShareDeleter defines the interface that the revoke service must implement.
type ShareDeleter interface {
	Delete(ctx context.Context, username, shareToken string) (*models.SharedListDB, error)
}

// shareURL builds the public URL for a token from the incoming request.
func shareURL(r *http.Request, shareToken string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + "/api/shared/" + shareToken
}

// CreateShareRequest represents the JSON body for minting a share link
// swagger:model CreateShareRequest
type CreateShareRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Validity window in days; defaults to 30 when omitted
	ExpiresDays *int `json:"expiresDays"`
}

// CreateShareResponse represents a successful share-link creation
// swagger:model CreateShareResponse
type CreateShareResponse struct {
	// Success message
	// default: Share link created
	Message    string     `json:"message"`
	ShareToken string     `json:"shareToken"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	ShareURL   string     `json:"shareUrl"`
}

// NewCreateShareHandler returns an HTTP handler for minting a share link.
// @Summary Create a share link
// @Tags shared
// @Accept json
// @Produce json
// @Param createShareRequest body handlers.CreateShareRequest true "Share link request"
// @Success 201 {object} handlers.CreateShareResponse "Share link created"
// @Failure 400 {object} handlers.ErrorResponse "Missing username"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user"
// @Router /shared/create [post]
func NewCreateShareHandler(svc ShareCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateShareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username is required"})
			return
		}

		link, err := svc.Create(r.Context(), req.Username, req.ExpiresDays)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateShareResponse{
			Message:    "Share link created",
			ShareToken: link.ShareToken,
			ExpiresAt:  link.ExpiresAt,
			ShareURL:   shareURL(r, link.ShareToken),
		})
	}
}

// SharedListResponse is the public read-only view of a shared favorites list
// swagger:model SharedListResponse
type SharedListResponse struct {
	Username    string              `json:"username"`
	CreatedAt   time.Time           `json:"createdAt"`
	ExpiresAt   *time.Time          `json:"expiresAt"`
	Favorites   []models.FavoriteDB `json:"favorites"`
	TotalMovies int                 `json:"totalMovies"`
}

// NewGetSharedHandler returns an HTTP handler for reading a shared list by
// token. The list is the owner's live favorites; expired and never-issued
// tokens produce the same 404.
// @Summary Read a shared list
// @Tags shared
// @Produce json
// @Param shareToken path string true "Share token"
// @Success 200 {object} handlers.SharedListResponse "Shared favorites"
// @Failure 404 {object} handlers.ErrorResponse "Invalid or expired share link"
// @Router /shared/{shareToken} [get]
func NewGetSharedHandler(svc SharedGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		shareToken := chi.URLParam(r, "shareToken")

		link, favorites, err := svc.GetShared(r.Context(), shareToken)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrShareLinkNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid or expired share link"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SharedListResponse{
			Username:    link.Username,
			CreatedAt:   link.CreatedAt,
			ExpiresAt:   link.ExpiresAt,
			Favorites:   favorites,
			TotalMovies: len(favorites),
		})
	}
}

// ShareLinkView is one of the caller's own links, with expiry computed at
// response time
// swagger:model ShareLinkView
type ShareLinkView struct {
	ShareToken string     `json:"shareToken"`
	ShareURL   string     `json:"shareUrl"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	IsExpired  bool       `json:"isExpired"`
}

// ListShareLinksResponse lists a user's share links, expired ones included
// swagger:model ListShareLinksResponse
type ListShareLinksResponse struct {
	Username    string          `json:"username"`
	SharedLinks []ShareLinkView `json:"sharedLinks"`
}

// NewListShareLinksHandler returns an HTTP handler for listing the caller's
// own share links.
// @Summary List own share links
// @Tags shared
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} handlers.ListShareLinksResponse "Share links"
// @Failure 400 {object} handlers.ErrorResponse "Missing username"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user"
// @Router /shared/links/user [get]
func NewListShareLinksHandler(svc ShareLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		username := r.URL.Query().Get("username")
		if username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username is required"})
			return
		}

		links, err := svc.ListLinks(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		now := time.Now()
		views := make([]ShareLinkView, 0, len(links))
		for _, link := range links {
			views = append(views, ShareLinkView{
				ShareToken: link.ShareToken,
				ShareURL:   shareURL(r, link.ShareToken),
				CreatedAt:  link.CreatedAt,
				ExpiresAt:  link.ExpiresAt,
				IsExpired:  link.IsExpired(now),
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListShareLinksResponse{
			Username:    username,
			SharedLinks: views,
		})
	}
}

// UpdateShareRequest represents the JSON body for changing a link's expiry
// swagger:model UpdateShareRequest
type UpdateShareRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Share token
	// required: true
	ShareToken string `json:"shareToken"`

	// New validity window in days from now
	// required: true
	ExpiresDays int `json:"expiresDays"`
}

// UpdateShareResponse represents a successful expiry update
// swagger:model UpdateShareResponse
type UpdateShareResponse struct {
	// Success message
	// default: Share link expiration updated
	Message      string     `json:"message"`
	ShareToken   string     `json:"shareToken"`
	NewExpiresAt *time.Time `json:"newExpiresAt"`
}

// NewUpdateShareHandler returns an HTTP handler for changing a link's
// expiration. Pushing an expired link into the future re-activates it.
// @Summary Update share link expiration
// @Tags shared
// @Accept json
// @Produce json
// @Param updateShareRequest body handlers.UpdateShareRequest true "Expiry update"
// @Success 200 {object} handlers.UpdateShareResponse "Expiration updated"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user or token"
// @Router /shared/update [put]
func NewUpdateShareHandler(svc ShareUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req UpdateShareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Username == "" || req.ShareToken == "" || req.ExpiresDays == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username, share token and expiration days are required"})
			return
		}

		link, err := svc.UpdateExpiration(r.Context(), req.Username, req.ShareToken, req.ExpiresDays)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrShareLinkNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Share link not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateShareResponse{
			Message:      "Share link expiration updated",
			ShareToken:   link.ShareToken,
			NewExpiresAt: link.ExpiresAt,
		})
	}
}

// DeleteShareRequest represents the JSON body for revoking a link
// swagger:model DeleteShareRequest
type DeleteShareRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Share token
	// required: true
	ShareToken string `json:"shareToken"`
}

// DeleteShareResponse represents a successful revocation
// swagger:model DeleteShareResponse
type DeleteShareResponse struct {
	// Success message
	// default: Share link removed
	Message string `json:"message"`
}

// NewDeleteShareHandler returns an HTTP handler for revoking a share link.
// Only the owning user can revoke; a correct token with the wrong owner is
// reported as not found.
// @Summary Delete a share link
// @Tags shared
// @Accept json
// @Produce json
// @Param deleteShareRequest body handlers.DeleteShareRequest true "Link to revoke"
// @Success 200 {object} handlers.DeleteShareResponse "Share link removed"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user, token, or not the owner"
// @Router /shared/delete [delete]
func NewDeleteShareHandler(svc ShareDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req DeleteShareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Username == "" || req.ShareToken == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username and share token are required"})
			return
		}

		_, err := svc.Delete(r.Context(), req.Username, req.ShareToken)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrShareLinkNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Share link not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteShareResponse{Message: "Share link removed"})
	}
}
