package models

// Genre is a catalog-provider genre entry.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Movie is the stable internal shape of a catalog movie. Optional fields are
// pointers so their absence serializes as an explicit JSON null, never as a
// missing key.
type Movie struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"originalTitle"`
	Overview      string   `json:"overview"`
	ReleaseDate   string   `json:"releaseDate"`
	Rating        float64  `json:"rating"`
	VoteCount     int64    `json:"voteCount"`
	Poster        *string  `json:"poster"`
	Backdrop      *string  `json:"backdrop"`
	Genres        []Genre  `json:"genres"`
	Runtime       *int64   `json:"runtime"`
	Director      *string  `json:"director"`
	Cast          []string `json:"cast"`
	Trailer       *string  `json:"trailer"`
}

// MoviePage is one page of catalog results.
type MoviePage struct {
	Movies       []Movie `json:"movies"`
	CurrentPage  int64   `json:"currentPage"`
	TotalPages   int64   `json:"totalPages"`
	TotalResults int64   `json:"totalResults"`
}
