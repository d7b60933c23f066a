package omdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// callCounter tracks upstream calls per lookup mode, safe for the
// concurrent fan-out paths.
type callCounter struct {
	mu     sync.Mutex
	byMode map[string]int
}

func newCallCounter() *callCounter {
	return &callCounter{byMode: make(map[string]int)}
}

func (c *callCounter) inc(mode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byMode[mode]++
}

func (c *callCounter) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.byMode {
		n += v
	}
	return n
}

func requestMode(r *http.Request) string {
	q := r.URL.Query()
	switch {
	case q.Get("s") != "":
		return "search"
	case q.Get("i") != "":
		return "id"
	case q.Get("t") != "":
		return "title"
	}
	return "unknown"
}

func newFakeUpstream(t *testing.T, handler http.HandlerFunc) (*DataSource, *callCounter, func()) {
	t.Helper()
	counter := newCallCounter()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counter.inc(requestMode(r))
		handler(w, r)
	}))
	ds := NewDataSource(NewClient("test-key", srv.URL))
	return ds, counter, srv.Close
}

func okRecord(title, imdbID string) MovieResponse {
	return MovieResponse{
		Title:      title,
		Year:       "2008",
		Released:   "18 Jul 2008",
		Runtime:    "120 min",
		Genre:      "Action",
		Plot:       "Plot of " + title,
		ImdbRating: "8.0",
		ImdbVotes:  "1,000",
		ImdbID:     imdbID,
		Response:   "True",
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestSearchMoviesEmptyQuery(t *testing.T) {
	ds, counter, stop := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream should not be called for empty queries")
	})
	defer stop()

	for _, query := range []string{"", "   "} {
		result, err := ds.SearchMovies(query, 1)
		if err != nil {
			t.Fatalf("SearchMovies(%q) error: %v", query, err)
		}
		if len(result.Movies) != 0 || result.TotalPages != 0 || result.TotalResults != 0 {
			t.Errorf("SearchMovies(%q) = %+v, want empty envelope", query, result)
		}
	}
	if counter.total() != 0 {
		t.Errorf("upstream calls = %d, want 0", counter.total())
	}
}

func TestSearchMoviesEnrichesHits(t *testing.T) {
	hits := []SearchItem{
		{Title: "Movie One", ImdbID: "tt0000001", Year: "2020"},
		{Title: "Movie Two", ImdbID: "tt0000002", Year: "2021"},
		{Title: "Movie Three", ImdbID: "tt0000003", Year: "2022"},
		{Title: "Movie Four", ImdbID: "tt0000004", Year: "2023"},
		{Title: "Movie Five", ImdbID: "tt0000005", Year: "2024"},
	}

	ds, _, stop := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch requestMode(r) {
		case "search":
			writeJSON(w, SearchResponse{Search: hits, TotalResults: "57", Response: "True"})
		case "id":
			imdbID := q.Get("i")
			if imdbID == "tt0000003" {
				// One bad item must not fail the page
				writeJSON(w, MovieResponse{Response: "False", Error: "Error getting data."})
				return
			}
			writeJSON(w, okRecord("Detail "+imdbID, imdbID))
		default:
			t.Errorf("unexpected request mode for %s", r.URL)
		}
	})
	defer stop()

	result, err := ds.SearchMovies("movie", 1)
	if err != nil {
		t.Fatalf("SearchMovies error: %v", err)
	}

	if len(result.Movies) != 4 {
		t.Fatalf("got %d movies, want 4 (one dropped)", len(result.Movies))
	}
	// Output order follows input order, not completion order
	wantIDs := []int{1, 2, 4, 5}
	for i, m := range result.Movies {
		if m.ID != wantIDs[i] {
			t.Errorf("movies[%d].ID = %d, want %d", i, m.ID, wantIDs[i])
		}
	}
	if result.TotalResults != 57 {
		t.Errorf("TotalResults = %d, want 57 (verbatim from upstream)", result.TotalResults)
	}
	if result.TotalPages != 6 {
		t.Errorf("TotalPages = %d, want ceil(57/10)", result.TotalPages)
	}
}

func TestSearchMoviesMalformedHitDropped(t *testing.T) {
	ds, counter, stop := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch requestMode(r) {
		case "search":
			writeJSON(w, SearchResponse{
				Search: []SearchItem{
					{Title: "Good", ImdbID: "tt0000010"},
					{Title: "Bad", ImdbID: "not-an-id"},
					{Title: "Also Good", ImdbID: "tt0000011"},
				},
				TotalResults: "3",
				Response:     "True",
			})
		case "id":
			imdbID := r.URL.Query().Get("i")
			if imdbID == "not-an-id" {
				t.Errorf("malformed id should be rejected before any lookup")
			}
			writeJSON(w, okRecord("Detail "+imdbID, imdbID))
		}
	})
	defer stop()

	result, err := ds.SearchMovies("good", 1)
	if err != nil {
		t.Fatalf("SearchMovies error: %v", err)
	}
	if len(result.Movies) != 2 {
		t.Fatalf("got %d movies, want 2", len(result.Movies))
	}
	if counter.total() != 3 { // 1 search + 2 detail lookups
		t.Errorf("upstream calls = %d, want 3", counter.total())
	}
}

func TestSearchMoviesNoMatches(t *testing.T) {
	ds, _, stop := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, SearchResponse{Response: "False", Error: "Movie not found!"})
	})
	defer stop()

	result, err := ds.SearchMovies("zzzzzz", 1)
	if err != nil {
		t.Fatalf("SearchMovies error: %v", err)
	}
	if len(result.Movies) != 0 || result.TotalPages != 0 || result.TotalResults != 0 {
		t.Errorf("result = %+v, want empty envelope", result)
	}
}

func TestGetMoviesByTitlesPagination(t *testing.T) {
	titles := make([]string, 25)
	ids := make(map[string]string, 25)
	for i := range titles {
		titles[i] = fmt.Sprintf("Catalog Movie %02d", i+1)
		ids[titles[i]] = fmt.Sprintf("tt%07d", 9000000+i+1)
	}

	ds, _, stop := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("t")
		imdbID, ok := ids[title]
		if !ok {
			writeJSON(w, MovieResponse{Response: "False", Error: "Movie not found!"})
			return
		}
		writeJSON(w, okRecord(title, imdbID))
	})
	defer stop()

	tests := []struct {
		name       string
		page       int
		wantMovies int
	}{
		{name: "first page", page: 1, wantMovies: 10},
		{name: "last partial page", page: 3, wantMovies: 5},
		{name: "out of range page", page: 999, wantMovies: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ds.GetMoviesByTitles(titles, tt.page)
			if err != nil {
				t.Fatalf("GetMoviesByTitles error: %v", err)
			}
			if len(result.Movies) != tt.wantMovies {
				t.Errorf("got %d movies, want %d", len(result.Movies), tt.wantMovies)
			}
			if result.TotalResults != 25 {
				t.Errorf("TotalResults = %d, want full list length 25", result.TotalResults)
			}
			if result.TotalPages != 3 {
				t.Errorf("TotalPages = %d, want ceil(25/10)", result.TotalPages)
			}
		})
	}

	t.Run("order matches title list", func(t *testing.T) {
		result, err := ds.GetMoviesByTitles(titles, 1)
		if err != nil {
			t.Fatalf("GetMoviesByTitles error: %v", err)
		}
		for i, m := range result.Movies {
			if m.Title != titles[i] {
				t.Errorf("movies[%d].Title = %q, want %q", i, m.Title, titles[i])
			}
		}
	})
}

func TestGetMovieByID(t *testing.T) {
	ds, _, stop := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		imdbID := r.URL.Query().Get("i")
		if imdbID != "tt0001234" {
			t.Errorf("upstream got i=%q, want tt0001234", imdbID)
		}
		writeJSON(w, okRecord("By ID", imdbID))
	})
	defer stop()

	detail, err := ds.GetMovieByID(1234)
	if err != nil {
		t.Fatalf("GetMovieByID error: %v", err)
	}
	if detail.ID != 1234 {
		t.Errorf("ID = %d, want 1234", detail.ID)
	}
	if detail.Runtime != 120 {
		t.Errorf("Runtime = %d, want 120", detail.Runtime)
	}
}

func TestGetMovieByIDNotFound(t *testing.T) {
	ds, _, stop := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, MovieResponse{Response: "False", Error: "Incorrect IMDb ID."})
	})
	defer stop()

	_, err := ds.GetMovieByID(42)
	if err == nil {
		t.Fatal("expected error for missing movie")
	}
	if !IsNotFound(err) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
	if IsTransient(err) {
		t.Errorf("error = %v, should not be transient", err)
	}
}

func TestGetMovieByIDTransient(t *testing.T) {
	ds, _, stop := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	})
	defer stop()

	_, err := ds.GetMovieByID(42)
	if err == nil {
		t.Fatal("expected error for failing upstream")
	}
	if !IsTransient(err) {
		t.Errorf("error = %v, want TransientError", err)
	}
	if IsNotFound(err) {
		t.Errorf("error = %v, should not be not-found", err)
	}
}

func TestYearCategoriesFallBackToPopular(t *testing.T) {
	catalogIDs := make(map[string]string, len(popularMovieTitles))
	for i, title := range popularMovieTitles {
		catalogIDs[title] = fmt.Sprintf("tt%07d", 8000000+i+1)
	}

	// Search requests fail at the transport level; title lookups work, so
	// the popular catalog remains reachable.
	ds, _, stop := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch requestMode(r) {
		case "search":
			http.Error(w, "upstream down", http.StatusInternalServerError)
		case "title":
			title := r.URL.Query().Get("t")
			imdbID, ok := catalogIDs[title]
			if !ok {
				writeJSON(w, MovieResponse{Response: "False", Error: "Movie not found!"})
				return
			}
			writeJSON(w, okRecord(title, imdbID))
		}
	})
	defer stop()

	ds.now = func() time.Time { return time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC) }

	want, err := ds.GetPopularMovies(1)
	if err != nil {
		t.Fatalf("GetPopularMovies error: %v", err)
	}

	nowPlaying, err := ds.GetNowPlayingMovies(1)
	if err != nil {
		t.Fatalf("GetNowPlayingMovies error: %v", err)
	}
	upcoming, err := ds.GetUpcomingMovies(1)
	if err != nil {
		t.Fatalf("GetUpcomingMovies error: %v", err)
	}

	if nowPlaying.TotalResults != want.TotalResults || upcoming.TotalResults != want.TotalResults {
		t.Errorf("fallback totals = %d/%d, want %d", nowPlaying.TotalResults, upcoming.TotalResults, want.TotalResults)
	}
	if len(nowPlaying.Movies) != len(want.Movies) || len(upcoming.Movies) != len(want.Movies) {
		t.Errorf("fallback page sizes = %d/%d, want %d", len(nowPlaying.Movies), len(upcoming.Movies), len(want.Movies))
	}
	for i := range want.Movies {
		if nowPlaying.Movies[i].Title != want.Movies[i].Title {
			t.Errorf("now playing movies[%d] = %q, want %q", i, nowPlaying.Movies[i].Title, want.Movies[i].Title)
		}
	}
}
