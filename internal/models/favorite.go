package models

import "time"

// FavoriteDB represents a favorited movie row. Movie fields are a snapshot
// captured at add time and are never refreshed from the catalog provider.
type FavoriteDB struct {
	ID               int64      `json:"id" db:"id"`
	UserID           int64      `json:"user_id" db:"user_id"`
	MovieID          int64      `json:"movie_id" db:"movie_id"`
	MovieTitle       string     `json:"movie_title" db:"movie_title"`
	MoviePoster      *string    `json:"movie_poster" db:"movie_poster"`
	MovieRating      float64    `json:"movie_rating" db:"movie_rating"`
	MovieReleaseDate *time.Time `json:"movie_release_date" db:"movie_release_date"`
	MovieOverview    string     `json:"movie_overview" db:"movie_overview"`
	AddedAt          time.Time  `json:"added_at" db:"added_at"`
}

// MovieSnapshot carries the movie fields persisted alongside a favorite.
type MovieSnapshot struct {
	ID          int64
	Title       string
	Poster      *string
	Rating      float64
	ReleaseDate *string // YYYY-MM-DD, nil when the provider has no date
	Overview    string
}

// FavoriteStatsDB is the aggregate over one user's favorites.
// AvgRating is 0 (not NaN) for a user with no favorites.
type FavoriteStatsDB struct {
	TotalCount int64   `db:"total_count"`
	AvgRating  float64 `db:"avg_rating"`
}
