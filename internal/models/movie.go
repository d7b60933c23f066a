package models

// Movie is the summary record returned in listings and search results.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"posterPath"`
	BackdropPath *string `json:"backdropPath"`
	ReleaseDate  string  `json:"releaseDate"`
	VoteAverage  float64 `json:"voteAverage"`
	VoteCount    int     `json:"voteCount"`
	Popularity   float64 `json:"popularity"`
	Genres       []Genre `json:"genres"`
}

// Genre is a movie genre. IDs are positional within a single record's
// genre list, not stable upstream identifiers.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetail extends Movie with the fields only available from a full
// detail lookup.
type MovieDetail struct {
	Movie
	Runtime             int                 `json:"runtime"`
	Budget              int                 `json:"budget"`
	Revenue             int                 `json:"revenue"`
	Tagline             string              `json:"tagline"`
	Homepage            string              `json:"homepage"`
	ProductionCompanies []ProductionCompany `json:"productionCompanies"`
	SpokenLanguages     []SpokenLanguage    `json:"spokenLanguages"`
	Status              string              `json:"status"`
}

// ProductionCompany is a movie production company.
type ProductionCompany struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logoPath"`
	OriginCountry string  `json:"originCountry"`
}

// SpokenLanguage is a language spoken in a movie.
type SpokenLanguage struct {
	EnglishName string `json:"englishName"`
	ISO6391     string `json:"iso6391"`
	Name        string `json:"name"`
}

// MoviesResponse is the paginated envelope returned by all list-producing
// operations.
type MoviesResponse struct {
	Movies       []Movie `json:"movies"`
	TotalPages   int     `json:"totalPages"`
	TotalResults int     `json:"totalResults"`
}

// Browsing categories exposed by the movies listing endpoint.
const (
	CategoryPopular    = "popular"
	CategoryTopRated   = "top_rated"
	CategoryNowPlaying = "now_playing"
	CategoryUpcoming   = "upcoming"
)
