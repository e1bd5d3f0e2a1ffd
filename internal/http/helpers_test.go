package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/groceries/internal/database/crud"
	"github.com/mrlokans/groceries/internal/schemas"
)

func TestParseIDParam_Valid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "123"}}

	id, ok := parseIDParam(c, "id")

	assert.True(t, ok)
	assert.Equal(t, uint(123), id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseIDParam_Invalid(t *testing.T) {
	for _, value := range []string{"abc", "-1", "0", ""} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: value}}

		id, ok := parseIDParam(c, "id")

		assert.False(t, ok, value)
		assert.Equal(t, uint(0), id)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), CodeValidationFailed)
	}
}

func TestRespondStoreError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "missing reference",
			err:    &crud.ReferenceError{Entity: "Item type", Field: "item_type_id", ID: 9},
			status: http.StatusBadRequest,
			code:   CodeInvalidReference,
		},
		{
			name:   "foreign key failure",
			err:    fmt.Errorf("%w: constraint", crud.ErrInvalidReference),
			status: http.StatusBadRequest,
			code:   CodeInvalidReference,
		},
		{
			name:   "duplicate",
			err:    fmt.Errorf("%w: UNIQUE constraint failed", crud.ErrDuplicate),
			status: http.StatusConflict,
			code:   CodeConflict,
		},
		{
			name:   "in use",
			err:    fmt.Errorf("%w: FOREIGN KEY constraint failed", crud.ErrInUse),
			status: http.StatusConflict,
			code:   CodeInUse,
		},
		{
			name:   "field errors",
			err:    schemas.FieldErrors{{Field: "grocery_date", Rule: "datetime", Message: "bad"}},
			status: http.StatusBadRequest,
			code:   CodeValidationFailed,
		},
		{
			name:   "anything else",
			err:    errors.New("disk I/O error"),
			status: http.StatusInternalServerError,
			code:   CodeInternal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

			respondStoreError(c, tc.err, "Item", "test")

			assert.Equal(t, tc.status, w.Code)
			resp := decode[ErrorResponse](t, w)
			assert.Equal(t, tc.code, resp.Code)
			assert.NotContains(t, resp.Error, "disk I/O")
		})
	}
}

func TestRespondStoreError_ReferenceDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	respondStoreError(c, &crud.ReferenceError{Entity: "Item", Field: "item_id", ID: 42}, "Grocery", "test")

	type referenceResponse struct {
		Error   string               `json:"error"`
		Details []schemas.FieldError `json:"details"`
	}
	resp := decode[referenceResponse](t, w)
	assert.Equal(t, "Item with id 42 does not exist", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "item_id", resp.Details[0].Field)
}

func TestRespondList_SetsTotalCount(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondList(c, []int{1, 2}, 17)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "17", w.Header().Get(TotalCountHeader))
	assert.JSONEq(t, "[1,2]", w.Body.String())
}
