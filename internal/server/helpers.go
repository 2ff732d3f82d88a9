// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"errors"
	"strings"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed page/limit query parameters.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

const maxPaginationLimit = 100

// parsePagination extracts page and limit query parameters with the given
// default limit. Page numbering starts at 1.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// pageMeta is the pagination block attached to list responses.
type pageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func newPageMeta(total int64, p Pagination) pageMeta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return pageMeta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}

// respondData writes the standard success envelope.
func respondData(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{"message": message}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// respondPage writes the success envelope with pagination metadata.
func respondPage(c *fiber.Ctx, message string, data any, total int64, p Pagination) error {
	return c.JSON(fiber.Map{
		"message":    message,
		"data":       data,
		"pagination": newPageMeta(total, p),
	})
}

// parseID extracts a route parameter by name and validates it as a UUID.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (string, error) {
	id := c.Params(param)
	if uuid.Validate(id) != nil {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid "+humanizeParam(param)))
		return "", errResponseWritten
	}
	return id, nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "commentId" -> "comment ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		return strings.ToLower(param[:len(param)-2]) + " ID"
	}
	return param
}

// parseDateQuery parses a date-range query parameter, accepting either a
// plain date (2006-01-02) or a full RFC 3339 timestamp.
func parseDateQuery(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// endOfDay extends a timestamp to 23:59:59.999 of its day so an upper
// bound is inclusive of the whole day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59,
		int(999*time.Millisecond), t.Location())
}

// actor returns the authenticated caller recorded by AuthRequired.
func actor(c *fiber.Ctx) service.Actor {
	return service.Actor{
		ID:   c.Locals("userID").(string),
		Role: c.Locals("userRole").(string),
	}
}
