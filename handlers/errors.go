// errors.go - Mapping from service errors to HTTP responses

package handlers

import (
	"errors"
	"net/http"

	"go-shop-backend/services"

	"github.com/gin-gonic/gin"
)

// abortWithServiceError translates a service error into a JSON error
// response. Unknown errors become an opaque 500.
func abortWithServiceError(c *gin.Context, err error) {
	status := serviceErrorStatus(err)
	if status == http.StatusInternalServerError {
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func serviceErrorStatus(err error) int {
	var stockErr *services.StockError
	var unavailableErr *services.UnavailableError

	switch {
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.As(err, &stockErr), errors.As(err, &unavailableErr):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotSeller):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrSellerNotApproved):
		return http.StatusForbidden
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSellerExists),
		errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
