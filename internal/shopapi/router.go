// Package shopapi is the development shop API the storefront talks to: a
// seeded catalog behind GET /product and order intake behind POST /order.
package shopapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	apperrors "github.com/jafarshop/storefront/pkg/errors"
)

// NewRouter creates and configures the Gin router
func NewRouter(environment string, store *Store, logger *zap.Logger) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Shop API",
			"endpoints": []string{
				"GET /health",
				"GET /product",
				"POST /order",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/product", handleGetProducts(store))
	router.POST("/order", handlePlaceOrder(store, logger))

	return router
}

func handleGetProducts(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": store.Products()})
	}
}

func handlePlaceOrder(store *Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order domain.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order body: " + err.Error()})
			return
		}

		resp, err := store.PlaceOrder(order, c.GetHeader("Idempotency-Key"))
		if err != nil {
			var notFound *apperrors.ErrNotFound
			if errors.As(err, &notFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": notFound.Error()})
				return
			}
			var validation *apperrors.ErrValidation
			if errors.As(err, &validation) {
				logger.Info("rejected order",
					zap.String("reason", validation.Message),
					zap.Any("fields", validation.Fields),
				)
				c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		logger.Info("order placed",
			zap.String("order_id", resp.ID),
			zap.Int("item_count", len(order.Items)),
			zap.Float64("total", resp.Total),
		)
		c.JSON(http.StatusOK, resp)
	}
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
