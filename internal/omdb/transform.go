package omdb

import (
	"strings"

	"movie-browser-movie-service/internal/models"
)

// yearRangeDash separates start and end years in OMDb's Year field for
// ongoing or multi-year entries ("2001–2003"). Only the start year matters.
const yearRangeDash = "–"

// releaseDate picks the upstream release date when present, otherwise
// synthesizes "{year}-01-01" from the start year, otherwise returns "".
func releaseDate(released, year string) string {
	if !isUnset(released) {
		return released
	}
	startYear, _, _ := strings.Cut(year, yearRangeDash)
	startYear = strings.TrimSpace(startYear)
	if startYear == "" {
		return ""
	}
	return startYear + "-01-01"
}

// transformMovie builds a summary record from a raw OMDb record. The caller
// resolves id up front (search stubs carry the IMDb id outside the record).
func transformMovie(raw *MovieResponse, id int) models.Movie {
	title := raw.Title
	if title == "" {
		title = "Unknown"
	}

	var poster *string
	if !isUnset(raw.Poster) {
		p := raw.Poster
		poster = &p
	}

	votes := parseVotes(raw.ImdbVotes)

	return models.Movie{
		ID:           id,
		Title:        title,
		Overview:     raw.Plot,
		PosterPath:   poster,
		BackdropPath: nil, // OMDb has no backdrop images
		ReleaseDate:  releaseDate(raw.Released, raw.Year),
		VoteAverage:  parseRating(raw.ImdbRating) * 10, // 0-10 scale -> 0-100
		VoteCount:    votes,
		Popularity:   float64(votes) * 0.1, // vote count as popularity proxy
		Genres:       parseGenres(raw.Genre),
	}
}

// transformMovieDetail layers the detail-only fields over the summary
// record. Budget and tagline are not available from OMDb and stay zero.
func transformMovieDetail(raw *MovieResponse, id int) *models.MovieDetail {
	detail := &models.MovieDetail{
		Movie:               transformMovie(raw, id),
		Runtime:             parseRuntime(raw.Runtime),
		Budget:              0,
		Revenue:             parseBoxOffice(raw.BoxOffice),
		Tagline:             "",
		Homepage:            "",
		ProductionCompanies: []models.ProductionCompany{},
		SpokenLanguages:     []models.SpokenLanguage{},
		Status:              "Unknown",
	}

	if !isUnset(raw.Website) {
		detail.Homepage = raw.Website
	}

	if !isUnset(raw.Production) {
		country := ""
		if !isUnset(raw.Country) {
			country, _, _ = strings.Cut(raw.Country, ",")
			country = strings.TrimSpace(country)
		}
		detail.ProductionCompanies = []models.ProductionCompany{{
			ID:            1,
			Name:          raw.Production,
			LogoPath:      nil,
			OriginCountry: country,
		}}
	}

	if !isUnset(raw.Language) {
		for _, lang := range strings.Split(raw.Language, ",") {
			name := strings.TrimSpace(lang)
			if name == "" {
				continue
			}
			detail.SpokenLanguages = append(detail.SpokenLanguages, models.SpokenLanguage{
				EnglishName: name,
				ISO6391:     languageCode(name),
				Name:        name,
			})
		}
	}

	if !isUnset(raw.Released) {
		detail.Status = "Released"
	}

	return detail
}

// languageCode derives a 2-letter code from the language name. This is a
// heuristic (first two letters, lower-cased), not an ISO-639 lookup.
func languageCode(name string) string {
	if len(name) < 2 {
		return strings.ToLower(name)
	}
	return strings.ToLower(name[:2])
}
