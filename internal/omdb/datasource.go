package omdb

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"movie-browser-movie-service/internal/metrics"
	"movie-browser-movie-service/internal/models"
)

// pageSize matches OMDb's own search page width; catalog pagination adopts
// the same size so both paths report comparable totals.
const pageSize = 10

// DataSource adapts the OMDb API into the internal movie model. It
// fabricates category browsing and pagination on top of a provider that
// supports neither natively.
type DataSource struct {
	client *Client

	// now is swappable so the year-based categories are testable.
	now func() time.Time
}

// NewDataSource creates a DataSource over the given client.
func NewDataSource(client *Client) *DataSource {
	return &DataSource{
		client: client,
		now:    time.Now,
	}
}

// GetMovieByTitle fetches and transforms a single record by exact title.
func (d *DataSource) GetMovieByTitle(title string) (*models.MovieDetail, error) {
	raw, err := d.client.LookupByTitle(title)
	if err != nil {
		return nil, err
	}
	if !raw.Ok() {
		return nil, &NotFoundError{Key: title, Message: raw.Error}
	}
	id, ok := IDFromIMDBID(raw.ImdbID)
	if !ok {
		return nil, fmt.Errorf("malformed imdb id %q for title %q", raw.ImdbID, title)
	}
	return transformMovieDetail(raw, id), nil
}

// GetMovieByID fetches and transforms a single record by internal id.
func (d *DataSource) GetMovieByID(id int) (*models.MovieDetail, error) {
	imdbID := IMDBIDFromInt(id)
	raw, err := d.client.LookupByID(imdbID)
	if err != nil {
		return nil, err
	}
	if !raw.Ok() {
		return nil, &NotFoundError{Key: imdbID, Message: raw.Error}
	}
	return transformMovieDetail(raw, id), nil
}

// SearchMovies runs a paged free-text search and enriches each hit with a
// full detail lookup (search stubs lack genres and vote data). A failed
// enrichment drops that one hit; the page never fails for a single bad item.
func (d *DataSource) SearchMovies(query string, page int) (*models.MoviesResponse, error) {
	if strings.TrimSpace(query) == "" {
		return emptyResponse(), nil
	}

	result, err := d.client.Search(query, page)
	if err != nil {
		return nil, err
	}
	if !result.Ok() {
		return emptyResponse(), nil
	}

	hits := result.Search
	if len(hits) > pageSize {
		hits = hits[:pageSize]
	}

	// Indexed slots keep output order equal to input order regardless of
	// which lookup finishes first.
	slots := make([]*models.Movie, len(hits))
	var wg sync.WaitGroup
	for i := range hits {
		wg.Add(1)
		go func(i int, hit SearchItem) {
			defer wg.Done()
			id, ok := IDFromIMDBID(hit.ImdbID)
			if !ok {
				slog.Warn("skipping search hit with malformed imdb id", "imdb_id", hit.ImdbID)
				return
			}
			raw, err := d.client.LookupByID(hit.ImdbID)
			if err != nil || !raw.Ok() {
				slog.Warn("failed to enrich search hit", "imdb_id", hit.ImdbID, "error", err)
				return
			}
			movie := transformMovie(raw, id)
			slots[i] = &movie
		}(i, hits[i])
	}
	wg.Wait()

	movies := collectMovies(slots)
	totalResults, _ := strconv.Atoi(result.TotalResults)
	return &models.MoviesResponse{
		Movies:       movies,
		TotalPages:   totalPages(totalResults),
		TotalResults: totalResults,
	}, nil
}

// GetMoviesByTitles resolves one page of the given title list to summary
// records. Totals always reflect the full unsliced list, so out-of-range
// pages return an empty slice with unchanged totals.
func (d *DataSource) GetMoviesByTitles(titles []string, page int) (*models.MoviesResponse, error) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(titles) {
		start = len(titles)
	}
	if end > len(titles) {
		end = len(titles)
	}
	window := titles[start:end]

	slots := make([]*models.Movie, len(window))
	var wg sync.WaitGroup
	for i := range window {
		wg.Add(1)
		go func(i int, title string) {
			defer wg.Done()
			detail, err := d.GetMovieByTitle(title)
			if err != nil {
				slog.Warn("dropping catalog title", "title", title, "error", err)
				return
			}
			movie := detail.Movie
			slots[i] = &movie
		}(i, window[i])
	}
	wg.Wait()

	return &models.MoviesResponse{
		Movies:       collectMovies(slots),
		TotalPages:   totalPages(len(titles)),
		TotalResults: len(titles),
	}, nil
}

// GetPopularMovies returns a page of the curated popular catalog.
func (d *DataSource) GetPopularMovies(page int) (*models.MoviesResponse, error) {
	return d.GetMoviesByTitles(popularMovieTitles, page)
}

// GetTopRatedMovies returns a page of the curated top-rated catalog.
func (d *DataSource) GetTopRatedMovies(page int) (*models.MoviesResponse, error) {
	return d.GetMoviesByTitles(topRatedMovieTitles, page)
}

// GetNowPlayingMovies approximates "now playing" by searching for the
// current calendar year. If the search itself fails it degrades to the
// popular catalog rather than failing the request.
func (d *DataSource) GetNowPlayingMovies(page int) (*models.MoviesResponse, error) {
	year := d.now().Year()
	return d.searchWithCatalogFallback(models.CategoryNowPlaying, strconv.Itoa(year), page)
}

// GetUpcomingMovies approximates "upcoming" by searching for next year.
func (d *DataSource) GetUpcomingMovies(page int) (*models.MoviesResponse, error) {
	year := d.now().Year() + 1
	return d.searchWithCatalogFallback(models.CategoryUpcoming, strconv.Itoa(year), page)
}

// searchWithCatalogFallback is the two-step category strategy: primary
// year search, curated popular catalog on transient upstream failure.
func (d *DataSource) searchWithCatalogFallback(category, query string, page int) (*models.MoviesResponse, error) {
	result, err := d.SearchMovies(query, page)
	if err == nil {
		return result, nil
	}
	if !IsTransient(err) {
		return nil, err
	}
	slog.Warn("category search failed, falling back to popular catalog",
		"category", category, "query", query, "error", err)
	metrics.CategoryFallbacks.WithLabelValues(category).Inc()
	return d.GetPopularMovies(page)
}

func collectMovies(slots []*models.Movie) []models.Movie {
	movies := make([]models.Movie, 0, len(slots))
	for _, m := range slots {
		if m != nil {
			movies = append(movies, *m)
		}
	}
	return movies
}

func totalPages(totalResults int) int {
	return (totalResults + pageSize - 1) / pageSize
}

func emptyResponse() *models.MoviesResponse {
	return &models.MoviesResponse{
		Movies:       []models.Movie{},
		TotalPages:   0,
		TotalResults: 0,
	}
}
