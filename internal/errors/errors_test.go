package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskforce/internal/store"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestStoreError_KeepsBackendMessage(t *testing.T) {
	w := record(func(c *gin.Context) {
		StoreError(c, &store.Error{
			Status:  http.StatusConflict,
			Code:    "23505",
			Message: `duplicate key value violates unique constraint "members_email_key"`,
		})
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	var body APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeStoreRejected, body.Code)
	assert.Equal(t, `duplicate key value violates unique constraint "members_email_key"`, body.Message)
	assert.Equal(t, map[string]interface{}{"code": "23505"}, body.Details)
}

func TestStoreError_OtherErrorsAreBadGateway(t *testing.T) {
	w := record(func(c *gin.Context) {
		StoreError(c, errors.New("dial tcp: connection refused"))
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"code":"STORE_REJECTED","message":"dial tcp: connection refused"}`, w.Body.String())
}

func TestHelpersDefaultMessages(t *testing.T) {
	w := record(func(c *gin.Context) { NotFound(c, "") })
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"Resource not found"}`, w.Body.String())

	w = record(func(c *gin.Context) { BadRequest(c, "") })
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"code":"INVALID_INPUT","message":"Invalid request"}`, w.Body.String())
}
