package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moviefavs/backend/internal/logger"
	"github.com/moviefavs/backend/internal/models"
	"github.com/moviefavs/backend/internal/services"
)

// FavoriteAdder defines the interface that the add-favorite service must
// implement.
type FavoriteAdder interface {
	Add(ctx context.Context, username string, movie models.MovieSnapshot) (*models.FavoriteDB, error)
}

// FavoriteRemover defines the interface that the remove-favorite service
// must implement.
type FavoriteRemover interface {
	Remove(ctx context.Context, username string, movieID int64) (*models.FavoriteDB, error)
}

// FavoriteLister defines the interface that the list-favorites service must
// implement.
type FavoriteLister interface {
	List(ctx context.Context, username string) ([]models.FavoriteDB, *models.FavoriteStatsDB, error)
}

// FavoriteChecker defines the interface that the check-favorite service must
// implement.
type FavoriteChecker interface {
	Check(ctx context.Context, username string, movieID int64) (*models.FavoriteDB, error)
}

// MovieData is the nested movie snapshot accepted on add
// swagger:model MovieData
type MovieData struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Poster      *string `json:"poster"`
	Rating      float64 `json:"rating"`
	ReleaseDate *string `json:"releaseDate"`
	Overview    string  `json:"overview"`
}

// AddFavoriteRequest represents the JSON body for adding a favorite. The
// snapshot arrives either nested under movieData or as flat movie* fields.
// swagger:model AddFavoriteRequest
type AddFavoriteRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Nested movie snapshot; takes precedence over the flat fields
	MovieData *MovieData `json:"movieData"`

	MovieTitle       string      `json:"movieTitle"`
	MoviePoster      *string     `json:"moviePoster"`
	MovieRating      json.Number `json:"movieRating"`
	MovieReleaseDate *string     `json:"movieReleaseDate"`
	MovieOverview    string      `json:"movieOverview"`
}

// AddFavoriteResponse represents a successful add-favorite response
// swagger:model AddFavoriteResponse
type AddFavoriteResponse struct {
	// Success message
	// default: Movie added to favorites
	Message string `json:"message"`

	// Created favorite
	Favorite *models.FavoriteDB `json:"favorite"`
}

// snapshot assembles the persisted movie snapshot from either request form.
func (req *AddFavoriteRequest) snapshot(movieID int64) models.MovieSnapshot {
	if req.MovieData != nil {
		return models.MovieSnapshot{
			ID:          req.MovieData.ID,
			Title:       req.MovieData.Title,
			Poster:      req.MovieData.Poster,
			Rating:      req.MovieData.Rating,
			ReleaseDate: emptyToNil(req.MovieData.ReleaseDate),
			Overview:    req.MovieData.Overview,
		}
	}

	title := req.MovieTitle
	if title == "" {
		title = "Untitled movie"
	}
	rating, _ := req.MovieRating.Float64()
	return models.MovieSnapshot{
		ID:          movieID,
		Title:       title,
		Poster:      req.MoviePoster,
		Rating:      rating,
		ReleaseDate: emptyToNil(req.MovieReleaseDate),
		Overview:    req.MovieOverview,
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// NewAddFavoriteHandler returns an HTTP handler for adding a favorite. The
// snapshot is captured as sent and never refreshed from the catalog.
// @Summary Add a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param movieId path int true "Movie id"
// @Param addFavoriteRequest body handlers.AddFavoriteRequest true "Favorite to add"
// @Success 201 {object} handlers.AddFavoriteResponse "Favorite created"
// @Failure 400 {object} handlers.ErrorResponse "Missing data or already favorited"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user"
// @Router /favorites/add/{movieId} [post]
func NewAddFavoriteHandler(svc FavoriteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		movieID, err := strconv.ParseInt(chi.URLParam(r, "movieId"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username and movie id are required"})
			return
		}

		var req AddFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username and movie id are required"})
			return
		}

		favorite, err := svc.Add(r.Context(), req.Username, req.snapshot(movieID))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrDuplicateFavorite):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Movie is already in the favorites list"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AddFavoriteResponse{
			Message:  "Movie added to favorites",
			Favorite: favorite,
		})
	}
}

// RemoveFavoriteRequest represents the JSON body for removing a favorite
// swagger:model RemoveFavoriteRequest
type RemoveFavoriteRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Movie id
	// required: true
	MovieID int64 `json:"movieId"`
}

// RemoveFavoriteResponse represents a successful remove-favorite response
// swagger:model RemoveFavoriteResponse
type RemoveFavoriteResponse struct {
	// Success message
	// default: Movie removed from favorites
	Message string `json:"message"`

	// Removed favorite
	Favorite *models.FavoriteDB `json:"favorite"`
}

// NewRemoveFavoriteHandler returns an HTTP handler for removing a favorite.
// @Summary Remove a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param removeFavoriteRequest body handlers.RemoveFavoriteRequest true "Favorite to remove"
// @Success 200 {object} handlers.RemoveFavoriteResponse "Favorite removed"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user or not favorited"
// @Router /favorites/remove [delete]
func NewRemoveFavoriteHandler(svc FavoriteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RemoveFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Username == "" || req.MovieID == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username and movie id are required"})
			return
		}

		favorite, err := svc.Remove(r.Context(), req.Username, req.MovieID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrFavoriteNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Movie not found in the favorites list"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RemoveFavoriteResponse{
			Message:  "Movie removed from favorites",
			Favorite: favorite,
		})
	}
}

// FavoriteStats is the aggregate block returned with a favorites list
// swagger:model FavoriteStats
type FavoriteStats struct {
	Total         int64   `json:"total"`
	AverageRating float64 `json:"averageRating"`
}

// ListFavoritesResponse represents a user's favorites with stats
// swagger:model ListFavoritesResponse
type ListFavoritesResponse struct {
	Username  string              `json:"username"`
	Favorites []models.FavoriteDB `json:"favorites"`
	Stats     FavoriteStats       `json:"stats"`
}

// NewListFavoritesHandler returns an HTTP handler for listing a user's
// favorites together with aggregate stats.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} handlers.ListFavoritesResponse "Favorites and stats"
// @Failure 400 {object} handlers.ErrorResponse "Missing username"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user"
// @Router /favorites/list [get]
func NewListFavoritesHandler(svc FavoriteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		username := r.URL.Query().Get("username")
		if username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username is required"})
			return
		}

		favorites, stats, err := svc.List(r.Context(), username)
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListFavoritesResponse{
			Username:  username,
			Favorites: favorites,
			Stats: FavoriteStats{
				Total:         stats.TotalCount,
				AverageRating: stats.AvgRating,
			},
		})
	}
}

// CheckFavoriteResponse reports whether a movie is favorited
// swagger:model CheckFavoriteResponse
type CheckFavoriteResponse struct {
	IsFavorite bool       `json:"isFavorite"`
	AddedAt    *time.Time `json:"addedAt,omitempty"`
}

// NewCheckFavoriteHandler returns an HTTP handler for the existence probe
// the UI uses to render the add/remove affordance. An unknown user is
// reported as not-favorited, never as an error.
// @Summary Check a favorite
// @Tags favorites
// @Produce json
// @Param username query string true "Username"
// @Param movieId query int true "Movie id"
// @Success 200 {object} handlers.CheckFavoriteResponse "Probe result"
// @Failure 400 {object} handlers.ErrorResponse "Missing parameters"
// @Router /favorites/check [get]
func NewCheckFavoriteHandler(svc FavoriteChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		username := r.URL.Query().Get("username")
		movieID, err := strconv.ParseInt(r.URL.Query().Get("movieId"), 10, 64)
		if username == "" || err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username and movie id are required"})
			return
		}

		favorite, err := svc.Check(r.Context(), username, movieID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		resp := CheckFavoriteResponse{IsFavorite: favorite != nil}
		if favorite != nil {
			resp.AddedAt = &favorite.AddedAt
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
