package omdb

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"movie-browser-movie-service/internal/models"
)

// sentinel is OMDb's placeholder for "field unavailable".
const sentinel = "N/A"

var (
	digitRun   = regexp.MustCompile(`\d+`)
	nonDigits  = regexp.MustCompile(`[^0-9]`)
	imdbIDForm = regexp.MustCompile(`^tt(\d+)$`)
)

func isUnset(s string) bool {
	return s == "" || s == sentinel
}

// parseRuntime extracts the minute count from strings like "152 min".
// Returns 0 when the field is unset or carries no digits.
func parseRuntime(s string) int {
	if isUnset(s) {
		return 0
	}
	match := digitRun.FindString(s)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}

// parseBoxOffice parses currency-formatted amounts like "$28,341,469" by
// stripping every non-digit character. Returns 0 when nothing remains.
func parseBoxOffice(s string) int {
	if isUnset(s) {
		return 0
	}
	cleaned := nonDigits.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

// parseRating parses a 0-10 decimal rating like "8.5". Returns 0 on unset
// or unparsable input.
func parseRating(s string) float64 {
	if isUnset(s) {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseVotes parses a comma-grouped vote count like "1,234,567".
func parseVotes(s string) int {
	if isUnset(s) {
		return 0
	}
	cleaned := strings.ReplaceAll(s, ",", "")
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

// parseGenres splits OMDb's comma-joined genre field into Genre values.
// Ids are 1-based positions within this list only.
func parseGenres(s string) []models.Genre {
	if isUnset(s) {
		return []models.Genre{}
	}
	parts := strings.Split(s, ",")
	genres := make([]models.Genre, 0, len(parts))
	for i, p := range parts {
		genres = append(genres, models.Genre{
			ID:   i + 1,
			Name: strings.TrimSpace(p),
		})
	}
	return genres
}

// IDFromIMDBID extracts the numeric suffix of a well-formed IMDb id
// ("tt0468569" -> 468569). Malformed keys are rejected rather than
// collapsed to 0, so distinct bad keys can never collide on one id.
func IDFromIMDBID(imdbID string) (int, bool) {
	match := imdbIDForm.FindStringSubmatch(imdbID)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IMDBIDFromInt reconstructs the IMDb id for an internal integer id,
// zero-padding back to the usual 7 digits.
func IMDBIDFromInt(id int) string {
	return fmt.Sprintf("tt%07d", id)
}
