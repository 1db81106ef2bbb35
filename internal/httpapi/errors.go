package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
)

// Stable machine-readable codes so clients can tell "not allowed" from
// "not enough stock" from "bad transition" regardless of wording.
const (
	codeValidation        = "VALIDATION_ERROR"
	codeUnauthenticated   = "UNAUTHENTICATED"
	codeForbidden         = "FORBIDDEN"
	codeNotFound          = "NOT_FOUND"
	codeInsufficientStock = "INSUFFICIENT_STOCK"
	codeEmptyCart         = "EMPTY_CART"
	codeInvalidTransition = "INVALID_STATE_TRANSITION"
	codeInternal          = "INTERNAL"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, err error) {
	var (
		validationErr domain.ValidationError
		notFoundErr   domain.NotFoundError
		forbiddenErr  domain.ForbiddenError
		stockErr      domain.InsufficientStockError
		transitionErr domain.InvalidTransitionError
	)

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, errorResponse{Code: codeUnauthenticated, Message: "authentication required"})

	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Code: codeEmptyCart, Message: "cart is empty"})

	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeValidation, Message: validationErr.Error()})

	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, errorResponse{Code: codeNotFound, Message: notFoundErr.Error()})

	case errors.As(err, &forbiddenErr):
		c.JSON(http.StatusForbidden, errorResponse{Code: codeForbidden, Message: forbiddenErr.Error()})

	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, errorResponse{Code: codeInsufficientStock, Message: stockErr.Error()})

	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, errorResponse{Code: codeInvalidTransition, Message: transitionErr.Error()})

	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Code: codeInternal, Message: "internal error"})
	}
}
