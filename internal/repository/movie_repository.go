package repository

import (
	"movie-browser-movie-service/internal/models"
	"movie-browser-movie-service/internal/omdb"
)

// MovieRepository is the data-access contract the service layer depends on.
type MovieRepository interface {
	GetPopularMovies(page int) (*models.MoviesResponse, error)
	GetTopRatedMovies(page int) (*models.MoviesResponse, error)
	GetNowPlayingMovies(page int) (*models.MoviesResponse, error)
	GetUpcomingMovies(page int) (*models.MoviesResponse, error)
	GetMovieByID(id int) (*models.MovieDetail, error)
	SearchMovies(query string, page int) (*models.MoviesResponse, error)
}

// omdbMovieRepository backs the repository with the OMDb datasource. All
// records are built fresh per request; nothing is persisted.
type omdbMovieRepository struct {
	ds *omdb.DataSource
}

// NewMovieRepository creates an OMDb-backed MovieRepository.
func NewMovieRepository(ds *omdb.DataSource) MovieRepository {
	return &omdbMovieRepository{ds: ds}
}

func (r *omdbMovieRepository) GetPopularMovies(page int) (*models.MoviesResponse, error) {
	return r.ds.GetPopularMovies(page)
}

func (r *omdbMovieRepository) GetTopRatedMovies(page int) (*models.MoviesResponse, error) {
	return r.ds.GetTopRatedMovies(page)
}

func (r *omdbMovieRepository) GetNowPlayingMovies(page int) (*models.MoviesResponse, error) {
	return r.ds.GetNowPlayingMovies(page)
}

func (r *omdbMovieRepository) GetUpcomingMovies(page int) (*models.MoviesResponse, error) {
	return r.ds.GetUpcomingMovies(page)
}

func (r *omdbMovieRepository) GetMovieByID(id int) (*models.MovieDetail, error) {
	return r.ds.GetMovieByID(id)
}

func (r *omdbMovieRepository) SearchMovies(query string, page int) (*models.MoviesResponse, error) {
	return r.ds.SearchMovies(query, page)
}
