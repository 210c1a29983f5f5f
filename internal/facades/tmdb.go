package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/moviefavs/backend/internal/logger"
	"github.com/moviefavs/backend/internal/models"
)

// ErrUpstream wraps any failure of the catalog provider. Callers surface it
// as a generic upstream error; no call is retried.
var ErrUpstream = errors.New("movie catalog request failed")

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultImageURL = "https://image.tmdb.org/t/p"
	defaultLanguage = "en-US"

	posterSize   = "w500"
	backdropSize = "w1280"
)

// TMDBFacade is a read-through adapter over the TMDB HTTP API. It owns the
// shaping of provider responses into the stable internal movie form.
type TMDBFacade struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	language string
}

// NewTMDBFacade creates a facade for the given API key. Empty baseURL and
// language fall back to the TMDB defaults.
func NewTMDBFacade(apiKey, baseURL, language string) *TMDBFacade {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if language == "" {
		language = defaultLanguage
	}
	return &TMDBFacade{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
	}
}

// tmdbMovie is the raw provider representation. Detail responses carry
// credits and videos via append_to_response; list responses do not.
type tmdbMovie struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	OriginalTitle string         `json:"original_title"`
	Overview      string         `json:"overview"`
	ReleaseDate   string         `json:"release_date"`
	VoteAverage   float64        `json:"vote_average"`
	VoteCount     int64          `json:"vote_count"`
	PosterPath    *string        `json:"poster_path"`
	BackdropPath  *string        `json:"backdrop_path"`
	Genres        []models.Genre `json:"genres"`
	Runtime       int64          `json:"runtime"`
	Credits       *struct {
		Crew []struct {
			Job  string `json:"job"`
			Name string `json:"name"`
		} `json:"crew"`
		Cast []struct {
			Name string `json:"name"`
		} `json:"cast"`
	} `json:"credits"`
	Videos *struct {
		Results []struct {
			Type string `json:"type"`
			Site string `json:"site"`
			Key  string `json:"key"`
		} `json:"results"`
	} `json:"videos"`
}

type tmdbPage struct {
	Results      []tmdbMovie `json:"results"`
	Page         int64       `json:"page"`
	TotalPages   int64       `json:"total_pages"`
	TotalResults int64       `json:"total_results"`
}

// SearchMovies queries the catalog by free text.
func (f *TMDBFacade) SearchMovies(ctx context.Context, query string, page int64) (*models.MoviePage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.FormatInt(page, 10))
	params.Set("include_adult", "false")
	return f.getPage(ctx, "/search/movie", params)
}

// GetMovieDetails fetches one movie with credits and videos attached.
func (f *TMDBFacade) GetMovieDetails(ctx context.Context, movieID int64) (*models.Movie, error) {
	params := url.Values{}
	params.Set("append_to_response", "videos,credits")

	var raw tmdbMovie
	if err := f.get(ctx, fmt.Sprintf("/movie/%d", movieID), params, &raw); err != nil {
		return nil, err
	}

	movie := formatMovie(raw)
	return &movie, nil
}

// GetPopularMovies fetches one page of the popular listing.
func (f *TMDBFacade) GetPopularMovies(ctx context.Context, page int64) (*models.MoviePage, error) {
	params := url.Values{}
	params.Set("page", strconv.FormatInt(page, 10))
	return f.getPage(ctx, "/movie/popular", params)
}

// GetTrendingMovies fetches one page of the trending listing for the given
// time window ("day" or "week").
func (f *TMDBFacade) GetTrendingMovies(ctx context.Context, timeWindow string, page int64) (*models.MoviePage, error) {
	params := url.Values{}
	params.Set("page", strconv.FormatInt(page, 10))
	return f.getPage(ctx, "/trending/movie/"+timeWindow, params)
}

func (f *TMDBFacade) getPage(ctx context.Context, path string, params url.Values) (*models.MoviePage, error) {
	var raw tmdbPage
	if err := f.get(ctx, path, params, &raw); err != nil {
		return nil, err
	}

	movies := make([]models.Movie, 0, len(raw.Results))
	for _, m := range raw.Results {
		movies = append(movies, formatMovie(m))
	}

	return &models.MoviePage{
		Movies:       movies,
		CurrentPage:  raw.Page,
		TotalPages:   raw.TotalPages,
		TotalResults: raw.TotalResults,
	}, nil
}

func (f *TMDBFacade) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", f.apiKey)
	params.Set("language", f.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("catalog request failed", "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("catalog returned non-OK status", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Log.Errorw("catalog response decode failed", "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return nil
}

// imageURL builds a full image URL from a provider path fragment, or nil
// when the movie has no image.
func imageURL(path *string, size string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := defaultImageURL + "/" + size + *path
	return &u
}

// formatMovie maps the raw provider movie into the stable internal shape.
// Absent optional fields become explicit nulls; genres default to an empty
// list, cast to null when credits were not requested.
func formatMovie(m tmdbMovie) models.Movie {
	movie := models.Movie{
		ID:            m.ID,
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		Overview:      m.Overview,
		ReleaseDate:   m.ReleaseDate,
		Rating:        m.VoteAverage,
		VoteCount:     m.VoteCount,
		Poster:        imageURL(m.PosterPath, posterSize),
		Backdrop:      imageURL(m.BackdropPath, backdropSize),
		Genres:        m.Genres,
	}
	if movie.Genres == nil {
		movie.Genres = []models.Genre{}
	}
	if m.Runtime > 0 {
		runtime := m.Runtime
		movie.Runtime = &runtime
	}
	if m.Credits != nil {
		for _, person := range m.Credits.Crew {
			if person.Job == "Director" {
				name := person.Name
				movie.Director = &name
				break
			}
		}
		cast := make([]string, 0, 5)
		for _, actor := range m.Credits.Cast {
			if len(cast) == 5 {
				break
			}
			cast = append(cast, actor.Name)
		}
		movie.Cast = cast
	}
	if m.Videos != nil {
		for _, video := range m.Videos.Results {
			if video.Type == "Trailer" && video.Site == "YouTube" {
				key := video.Key
				movie.Trailer = &key
				break
			}
		}
	}
	return movie
}
