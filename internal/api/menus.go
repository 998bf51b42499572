package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brasserie/internal/models"
	"brasserie/internal/store"
)

type publishMenuRequest struct {
	Day   string            `json:"day"`
	Week  string            `json:"week"`
	Items []menuItemRequest `json:"items"`
}

type menuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (s *Server) handleListMenus(c *gin.Context) {
	menus, err := s.catalog.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Menu not found")
		return
	}
	c.JSON(http.StatusOK, menus)
}

func (s *Server) handleListMenusByWeek(c *gin.Context) {
	menus, err := s.catalog.ListByWeek(c.Request.Context(), c.Param("week"))
	if err != nil {
		respondError(c, err, "Menu not found")
		return
	}
	c.JSON(http.StatusOK, menus)
}

func (s *Server) handleGetMenuByDayWeek(c *gin.Context) {
	menu, err := s.catalog.GetByDayWeek(c.Request.Context(), c.Param("day"), c.Param("week"))
	if err != nil {
		respondError(c, err, "Menu not found")
		return
	}
	c.JSON(http.StatusOK, menu)
}

// handlePublishMenu upserts the menu for a (day, week) slot: 201 when a
// new menu is created, 200 when an existing one is replaced in full.
func (s *Server) handlePublishMenu(c *gin.Context) {
	var req publishMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	items := make([]models.MenuItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.MenuItem{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		}
	}

	menu, result, err := s.catalog.Publish(c.Request.Context(), req.Day, req.Week, items)
	if err != nil {
		respondError(c, err, "Menu not found")
		return
	}

	s.collector.RecordMenuPublished(string(result))
	if result == store.PublishCreated {
		c.JSON(http.StatusCreated, menu)
		return
	}
	c.JSON(http.StatusOK, menu)
}

func (s *Server) handleDeleteMenu(c *gin.Context) {
	if err := s.catalog.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Menu not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
}
