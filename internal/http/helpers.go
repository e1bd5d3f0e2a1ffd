package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/groceries/internal/database/crud"
	"github.com/mrlokans/groceries/internal/schemas"
)

// TotalCountHeader carries the unpaginated row count of list responses.
const TotalCountHeader = "X-Total-Count"

// Machine-readable error codes.
const (
	CodeValidationFailed = "validation_failed"
	CodeNotFound         = "not_found"
	CodeInvalidReference = "invalid_reference"
	CodeConflict         = "conflict"
	CodeInUse            = "in_use"
	CodeForbidden        = "forbidden"
	CodeInternal         = "internal_error"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// MessageResponse is returned by endpoints that only report a status.
type MessageResponse struct {
	Message string `json:"message"`
}

// --- Error Response Helpers ---

// respondValidationError sends a 400 listing the rejected fields.
func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation failed",
		Code:    CodeValidationFailed,
		Details: schemas.FromError(err),
	})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: CodeNotFound})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	slog.ErrorContext(c.Request.Context(), "internal error",
		"context", context,
		"request_id", RequestIDFrom(c),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: CodeInternal})
}

// respondStoreError maps the errors returned by the repositories onto
// responses. resource names the entity in conflict messages, e.g. "Item".
func respondStoreError(c *gin.Context, err error, resource, context string) {
	var refErr *crud.ReferenceError
	switch {
	case errors.As(err, &refErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   refErr.Error(),
			Code:    CodeInvalidReference,
			Details: schemas.FieldErrors{{Field: refErr.Field, Rule: "exists", Message: refErr.Error()}},
		})
	case errors.Is(err, crud.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "referenced record does not exist", Code: CodeInvalidReference})
	case errors.Is(err, crud.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: resource + " with this name already exists", Code: CodeConflict})
	case errors.Is(err, crud.ErrInUse):
		c.JSON(http.StatusConflict, ErrorResponse{Error: resource + " is still in use", Code: CodeInUse})
	default:
		var fieldErrs schemas.FieldErrors
		if errors.As(err, &fieldErrs) {
			respondValidationError(c, fieldErrs)
			return
		}
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondList sends a page of results with the total count header.
func respondList(c *gin.Context, data any, total int64) {
	c.Header(TotalCountHeader, strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		respondValidationError(c, schemas.FieldErrors{{
			Field:   paramName,
			Rule:    "id",
			Message: "must be a positive integer",
		}})
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes and validates the request body into dst.
// On failure it responds with a 400 and returns false.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondValidationError(c, err)
		return false
	}
	return true
}

// bindQuery decodes and validates the query string into dst.
// On failure it responds with a 400 and returns false.
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		respondValidationError(c, err)
		return false
	}
	return true
}
