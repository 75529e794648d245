package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"travel-webapp/errors"
	"travel-webapp/model"
	"travel-webapp/storage"
)

// UnifiedSearch runs one query across all catalogs and returns the capped,
// category-tagged hit list.
func (h *Handler) UnifiedSearch(c *fiber.Ctx) error {
	req := new(model.SearchRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable search parameters: %v", jsonErr))
	}

	response, searchErr := h.Store.UnifiedSearch(*req)
	if searchErr == storage.ErrEmptyQuery {
		return errors.RaiseBadRequestError(c, "search query is required")
	}
	if searchErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("search failed: %v", searchErr))
	}

	return c.JSON(response)
}
