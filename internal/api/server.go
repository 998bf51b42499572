// Package api is the stateless HTTP gateway. Handlers parse and shape
// requests, call exactly one store, and map results onto wire
// responses; no business state lives here.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brasserie/internal/metrics"
	"brasserie/internal/models"
	"brasserie/internal/store"
)

// Server wires the three stores behind the REST surface.
type Server struct {
	router      *gin.Engine
	catalog     *store.MenuCatalog
	ledger      *store.OrderLedger
	suggestions *store.SuggestionBox
	collector   *metrics.Collector
}

// NewServer creates the gateway over the given stores.
func NewServer(catalog *store.MenuCatalog, ledger *store.OrderLedger, suggestions *store.SuggestionBox, collector *metrics.Collector) *Server {
	s := &Server{
		router:      gin.Default(),
		catalog:     catalog,
		ledger:      ledger,
		suggestions: suggestions,
		collector:   collector,
	}

	s.router.Use(collector.Middleware())
	s.setupRoutes()
	return s
}

// Router returns the gin router, mainly for tests and the HTTP server.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures all API endpoints.
func (s *Server) setupRoutes() {
	s.router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Restaurant pre-order API is running")
	})
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		menus := api.Group("/menus")
		{
			menus.GET("", s.handleListMenus)
			menus.GET("/week/:week", s.handleListMenusByWeek)
			menus.GET("/:day/:week", s.handleGetMenuByDayWeek)
			menus.POST("", s.handlePublishMenu)
			menus.DELETE("/:id", s.handleDeleteMenu)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", s.handleListOrders)
			orders.GET("/status/:status", s.handleListOrdersByStatus)
			orders.GET("/day/:day/week/:week", s.handleListOrdersByDayWeek)
			orders.GET("/:id", s.handleGetOrder)
			orders.POST("", s.handleCreateOrder)
			orders.PATCH("/:id/status", s.handleUpdateOrderStatus)
			orders.DELETE("/:id", s.handleDeleteOrder)
		}

		suggestions := api.Group("/suggestions")
		{
			suggestions.GET("", s.handleListSuggestions)
			suggestions.GET("/:id", s.handleGetSuggestion)
			suggestions.POST("", s.handleCreateSuggestion)
			suggestions.PATCH("/:id/status", s.handleUpdateSuggestionStatus)
			suggestions.DELETE("/:id", s.handleDeleteSuggestion)
		}
	}
}

// respondError maps a store failure onto the wire: validation failures
// become 400, lookup misses 404 with the given message, anything else
// 500. Bodies always carry a single message field.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
