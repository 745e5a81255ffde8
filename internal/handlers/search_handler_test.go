package handlers

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recommendations-service/internal/catalog"
	"recommendations-service/internal/models"
	"recommendations-service/internal/repository"
	"recommendations-service/internal/services"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	links := catalog.NewLinkBuilder(catalog.AffiliateConfig{})
	synth := catalog.NewSynthesizer(catalog.PricingLadder, links, rand.NewSource(1))
	service := services.NewSearchService(catalog.NewClassifier(), synth, links, nil, nil, logger)
	stats := repository.NewStatsRepository(nil)
	handler := NewSearchHandler(service, stats, logger)

	router := gin.New()
	router.GET("/health", HealthCheck)
	api := router.Group("/api/v1")
	{
		api.GET("/search", handler.Search)
		api.POST("/search/filter", handler.FilterProducts)
		api.GET("/search/stats", handler.GetStats)
		api.GET("/categories", handler.GetCategories)
	}
	return router
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=best+laptop", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "laptops", resp.Data.Category)
	assert.Equal(t, models.SearchSourceSynthetic, resp.Data.Source)
	assert.Len(t, resp.Data.Products, 10)
	assert.Len(t, resp.Data.PriceBuckets, 4)
}

func TestSearchEndpointRequiresQuery(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "q", resp.Error.Field)
}

func TestFilterEndpoint(t *testing.T) {
	router := newTestRouter()

	body, err := json.Marshal(models.FilterRequest{
		Products: []models.Product{
			{ID: "product-1", Brand: "Sony", Price: 100, Rating: 4.8},
			{ID: "product-2", Brand: "Bose", Price: 150, Rating: 3.9},
		},
		Filters: models.FilterState{MinRating: 4.5},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search/filter", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Data    models.FilterResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Data.Total)
	require.Len(t, resp.Data.Products, 1)
	assert.Equal(t, "Sony", resp.Data.Products[0].Brand)
	assert.Len(t, resp.Data.PriceBuckets, 4)
}

func TestFilterEndpointRejectsBadBody(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search/filter", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoriesEndpoint(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CategoryListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, resp.Total, len(resp.Data))
	require.NotEmpty(t, resp.Data)
	assert.Contains(t, resp.Data[0].Vendors, "Amazon")
}

func TestStatsEndpointUnavailableWithoutRedis(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "STATS_UNAVAILABLE", resp.Error.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
