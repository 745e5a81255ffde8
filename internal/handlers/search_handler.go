package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"recommendations-service/internal/models"
	"recommendations-service/internal/repository"
	"recommendations-service/internal/services"
)

// SearchHandler exposes the recommendation pipeline over HTTP.
type SearchHandler struct {
	service *services.SearchService
	stats   *repository.StatsRepository
	logger  *logrus.Logger
}

// NewSearchHandler creates a new search handler instance.
func NewSearchHandler(service *services.SearchService, stats *repository.StatsRepository, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		stats:   stats,
		logger:  logger,
	}
}

// Search runs a product search
// @Summary Search for product recommendations
// @Description Returns the top 10 products for a free-text query. Falls back to the synthetic catalog when the AI search is unavailable.
// @Tags Search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: "Query parameter 'q' is required",
				Field:   "q",
			},
		})
		return
	}

	result := h.service.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, models.SearchResponse{
		Success: true,
		Data:    result,
	})
}

// FilterProducts applies storefront filters to a product list
// @Summary Filter a product list
// @Description Applies price-bucket, brand, and minimum-rating filters and returns the buckets derived from the submitted prices.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body models.FilterRequest true "Products and filter state"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /search/filter [post]
func (h *SearchHandler) FilterProducts(c *gin.Context) {
	var req models.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	filtered, buckets := h.service.Filter(req.Products, req.Filters)
	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data: models.FilterResponse{
			Products:     filtered,
			Total:        len(filtered),
			PriceBuckets: buckets,
		},
	})
}

// GetCategories lists the known category profiles
// @Summary Get category profiles
// @Description Returns the static category profiles backing the storefront's shortcut tiles.
// @Tags Categories
// @Produce json
// @Success 200 {object} models.CategoryListResponse
// @Router /categories [get]
func (h *SearchHandler) GetCategories(c *gin.Context) {
	profiles := h.service.Categories()
	c.JSON(http.StatusOK, models.CategoryListResponse{
		Success: true,
		Data:    profiles,
		Total:   len(profiles),
	})
}

// GetStats returns the search-path counters
// @Summary Get search statistics
// @Description Returns how many searches were served by the AI path vs the synthetic fallback.
// @Tags Search
// @Produce json
// @Success 200 {object} models.StatsResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /search/stats [get]
func (h *SearchHandler) GetStats(c *gin.Context) {
	stats, err := h.stats.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Warn("Failed to load search stats")
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "STATS_UNAVAILABLE",
				Message: "Search statistics are not available",
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.StatsResponse{
		Success: true,
		Data:    stats,
	})
}
