package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herbgarden/models"
)

func TestGetPostMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/post-meta", GetPostMeta)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/post-meta", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		PostTypes  []string `json:"postTypes"`
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, models.PostTypes, body.PostTypes)
	assert.Equal(t, models.DefaultCategories, body.Categories)
}
