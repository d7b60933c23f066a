package omdb

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"movie-browser-movie-service/internal/metrics"
)

// Client is a low-level OMDb API client. OMDb exposes a single endpoint
// whose mode is selected by query parameter: t= (lookup by title),
// i= (lookup by IMDb id) and s= (free-text search).
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new OMDb API client.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ---- OMDb Response Types (internal, not exposed to consumers) ----

// MovieResponse is a single-record OMDb response. Every field is a string;
// unavailable fields carry the literal "N/A".
type MovieResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbVotes  string `json:"imdbVotes"`
	ImdbID     string `json:"imdbID"`
	Type       string `json:"Type"`
	BoxOffice  string `json:"BoxOffice"`
	Production string `json:"Production"`
	Website    string `json:"Website"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// SearchItem is a stub record from an OMDb search response. It lacks the
// rating, vote and genre fields; a detail lookup is needed to fill those in.
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// SearchResponse is the OMDb search response.
type SearchResponse struct {
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

// Ok reports whether the record is a successful lookup.
func (r *MovieResponse) Ok() bool {
	return r.Response == "True" && r.Error == ""
}

// Ok reports whether the search succeeded and returned hits.
func (r *SearchResponse) Ok() bool {
	return r.Response == "True" && r.Error == "" && len(r.Search) > 0
}

// ---- Client Methods ----

// LookupByTitle fetches a full-plot record by exact title.
func (c *Client) LookupByTitle(title string) (*MovieResponse, error) {
	params := url.Values{}
	params.Set("t", title)
	params.Set("plot", "full")

	slog.Debug("fetching OMDb record by title", "title", title)
	var result MovieResponse
	if err := c.get("title", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LookupByID fetches a full-plot record by IMDb id (e.g. "tt0468569").
func (c *Client) LookupByID(imdbID string) (*MovieResponse, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")

	slog.Debug("fetching OMDb record by id", "imdb_id", imdbID)
	var result MovieResponse
	if err := c.get("id", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search runs a free-text movie search. OMDb pages its results 10 wide.
func (c *Client) Search(query string, page int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("s", query)
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("type", "movie")

	slog.Debug("searching OMDb", "query", query, "page", page)
	var result SearchResponse
	if err := c.get("search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(mode string, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	requestURL := c.baseURL + "/?" + params.Encode()

	start := time.Now()
	err := c.doGet(requestURL, out)
	metrics.UpstreamDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(mode, "error").Inc()
		return &TransientError{Op: "omdb." + mode, Err: err}
	}
	metrics.UpstreamRequests.WithLabelValues(mode, "ok").Inc()
	return nil
}

func (c *Client) doGet(requestURL string, out any) error {
	resp, err := c.http.Get(requestURL)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("OMDb API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode OMDb response: %w", err)
	}
	return nil
}
