package service

import (
	"errors"
	"fmt"

	"movie-browser-movie-service/internal/models"
	"movie-browser-movie-service/internal/repository"
)

// ErrInvalidCategory is returned for an unknown browsing category.
var ErrInvalidCategory = errors.New("invalid category")

// MovieService handles business logic for movies.
type MovieService struct {
	repo repository.MovieRepository
}

// NewMovieService creates a new MovieService.
func NewMovieService(repo repository.MovieRepository) *MovieService {
	return &MovieService{repo: repo}
}

// GetMoviesByCategory returns one page of the requested browsing category.
func (s *MovieService) GetMoviesByCategory(category string, page int) (*models.MoviesResponse, error) {
	if page < 1 {
		page = 1
	}

	switch category {
	case models.CategoryPopular:
		return s.repo.GetPopularMovies(page)
	case models.CategoryTopRated:
		return s.repo.GetTopRatedMovies(page)
	case models.CategoryNowPlaying:
		return s.repo.GetNowPlayingMovies(page)
	case models.CategoryUpcoming:
		return s.repo.GetUpcomingMovies(page)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
}

// SearchMovies returns one page of free-text search results. An empty query
// yields an empty envelope, not an error.
func (s *MovieService) SearchMovies(query string, page int) (*models.MoviesResponse, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.SearchMovies(query, page)
}

// GetMovieDetail returns detailed movie info by internal id.
func (s *MovieService) GetMovieDetail(id int) (*models.MovieDetail, error) {
	return s.repo.GetMovieByID(id)
}
