package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/moviefavs/backend/internal/logger"
	"github.com/moviefavs/backend/internal/models"
)

// MovieCatalog defines the catalog gateway operations the movie handlers
// need.
type MovieCatalog interface {
	SearchMovies(ctx context.Context, query string, page int64) (*models.MoviePage, error)
	GetMovieDetails(ctx context.Context, movieID int64) (*models.Movie, error)
	GetPopularMovies(ctx context.Context, page int64) (*models.MoviePage, error)
	GetTrendingMovies(ctx context.Context, timeWindow string, page int64) (*models.MoviePage, error)
}

// MovieListResponse represents one page of catalog movies
// swagger:model MovieListResponse
type MovieListResponse struct {
	Movies       []models.Movie `json:"movies"`
	CurrentPage  int64          `json:"currentPage"`
	TotalPages   int64          `json:"totalPages"`
	TotalResults int64          `json:"totalResults"`
	TimeWindow   string         `json:"timeWindow,omitempty"`
}

// pageParam parses the page query parameter, defaulting to 1.
func pageParam(r *http.Request) int64 {
	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// NewSearchMoviesHandler returns an HTTP handler for catalog search.
// @Summary Search movies
// @Tags movies
// @Produce json
// @Param query query string true "Search text"
// @Param page query int false "Page number"
// @Success 200 {object} handlers.MovieListResponse "Matching movies"
// @Failure 400 {object} handlers.ErrorResponse "Missing query"
// @Failure 500 {object} handlers.ErrorResponse "Catalog provider failure"
// @Router /movies/search [get]
func NewSearchMoviesHandler(catalog MovieCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		query := r.URL.Query().Get("query")
		if query == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Query parameter is required"})
			return
		}

		page, err := catalog.SearchMovies(r.Context(), query, pageParam(r))
		if err != nil {
			logger.Log.Errorw("movie search failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to search movies"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MovieListResponse{
			Movies:       page.Movies,
			CurrentPage:  page.CurrentPage,
			TotalPages:   page.TotalPages,
			TotalResults: page.TotalResults,
		})
	}
}

// NewMovieDetailsHandler returns an HTTP handler for one movie's details.
// A zero or non-numeric id is invalid; negative ids pass through to the
// provider unchanged.
// @Summary Movie details
// @Tags movies
// @Produce json
// @Param id path int true "Movie id"
// @Success 200 {object} models.Movie "Movie details"
// @Failure 400 {object} handlers.ErrorResponse "Invalid movie id"
// @Failure 500 {object} handlers.ErrorResponse "Catalog provider failure"
// @Router /movies/{id} [get]
func NewMovieDetailsHandler(catalog MovieCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		movieID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || movieID == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid movie id"})
			return
		}

		movie, err := catalog.GetMovieDetails(r.Context(), movieID)
		if err != nil {
			logger.Log.Errorw("movie details failed", "movie_id", movieID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch movie details"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(movie)
	}
}

// NewPopularMoviesHandler returns an HTTP handler for the popular listing.
// @Summary Popular movies
// @Tags movies
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} handlers.MovieListResponse "Popular movies"
// @Failure 500 {object} handlers.ErrorResponse "Catalog provider failure"
// @Router /movies/popular/list [get]
func NewPopularMoviesHandler(catalog MovieCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		page, err := catalog.GetPopularMovies(r.Context(), pageParam(r))
		if err != nil {
			logger.Log.Errorw("popular movies failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch popular movies"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MovieListResponse{
			Movies:       page.Movies,
			CurrentPage:  page.CurrentPage,
			TotalPages:   page.TotalPages,
			TotalResults: page.TotalResults,
		})
	}
}

// NewTrendingMoviesHandler returns an HTTP handler for the trending listing.
// @Summary Trending movies
// @Tags movies
// @Produce json
// @Param timeWindow query string false "day or week"
// @Param page query int false "Page number"
// @Success 200 {object} handlers.MovieListResponse "Trending movies"
// @Failure 500 {object} handlers.ErrorResponse "Catalog provider failure"
// @Router /movies/trending/list [get]
func NewTrendingMoviesHandler(catalog MovieCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		timeWindow := r.URL.Query().Get("timeWindow")
		if timeWindow != "day" {
			timeWindow = "week"
		}

		page, err := catalog.GetTrendingMovies(r.Context(), timeWindow, pageParam(r))
		if err != nil {
			logger.Log.Errorw("trending movies failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch trending movies"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MovieListResponse{
			Movies:       page.Movies,
			CurrentPage:  page.CurrentPage,
			TotalPages:   page.TotalPages,
			TotalResults: page.TotalResults,
			TimeWindow:   timeWindow,
		})
	}
}
