package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"movie-browser-movie-service/internal/models"
	"movie-browser-movie-service/internal/omdb"
	"movie-browser-movie-service/internal/service"
)

// MovieHandler handles HTTP requests for movies.
type MovieHandler struct {
	svc *service.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *MovieHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "movie-service",
	})
}

// ListMovies returns a page of movies for a browsing category.
// @Summary List movies by category
// @Tags movies
// @Produce json
// @Param category query string false "Browsing category" Enums(popular,top_rated,now_playing,upcoming) default(popular)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.MoviesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c fiber.Ctx) error {
	category := c.Query("category", models.CategoryPopular)
	page := fiber.Query(c, "page", 1)

	result, err := h.svc.GetMoviesByCategory(category, page)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "invalid category",
			})
		}
		slog.Error("failed to list movies", "category", category, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve movies",
		})
	}

	return c.JSON(result)
}

// SearchMovies returns a page of free-text search results.
// @Summary Search movies
// @Tags movies
// @Produce json
// @Param query query string true "Search text"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.MoviesResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/search [get]
func (h *MovieHandler) SearchMovies(c fiber.Ctx) error {
	query := c.Query("query")
	page := fiber.Query(c, "page", 1)

	result, err := h.svc.SearchMovies(query, page)
	if err != nil {
		slog.Error("failed to search movies", "query", query, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to search movies",
		})
	}

	return c.JSON(result)
}

// GetMovieDetail returns detailed info for a single movie.
// @Summary Get movie detail
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.MovieDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieDetail(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid movie ID",
		})
	}

	detail, err := h.svc.GetMovieDetail(id)
	if err != nil {
		if omdb.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "movie not found",
			})
		}
		slog.Error("failed to get movie detail", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve movie details",
		})
	}

	return c.JSON(detail)
}
