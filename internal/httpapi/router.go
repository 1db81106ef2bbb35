package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
	"github.com/OssiLV/uit-ecommerce/internal/service"
)

const userIDKey = "userID"

type Server struct {
	carts  *service.CartService
	orders *service.OrderService
	logger *zap.Logger
	router *gin.Engine
}

func NewServer(carts *service.CartService, orders *service.OrderService, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	s := &Server{
		carts:  carts,
		orders: orders,
		logger: logger,
		router: router,
	}
	s.setupRoutes()

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.router.Group("/api/v1")
	v1.Use(identityMiddleware())
	{
		cart := v1.Group("/cart")
		{
			cart.GET("", s.getCart)
			cart.POST("/items", s.addCartItem)
			cart.DELETE("/items/:id", s.removeCartItem)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", s.placeOrder)
			orders.GET("", s.listMyOrders)
			orders.GET("/:id", s.getOrder)
			orders.POST("/:id/cancel", s.cancelOrder)
		}

		admin := v1.Group("/admin")
		{
			admin.PUT("/orders/:id/status", s.adminUpdateStatus)
		}
	}
}

// identityMiddleware resolves the caller from the X-User-ID header set
// by the authentication gateway in front of this service.
func identityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			writeError(c, domain.ErrUnauthenticated)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUser(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
