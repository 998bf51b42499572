package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brasserie/internal/models"
)

type createOrderRequest struct {
	CustomerName string                 `json:"customerName"`
	PhoneNumber  string                 `json:"phoneNumber"`
	PickupTime   string                 `json:"pickupTime"`
	Day          string                 `json:"day"`
	Week         string                 `json:"week"`
	Items        []orderLineItemRequest `json:"items"`
	TotalPrice   float64                `json:"totalPrice"`
}

type orderLineItemRequest struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleListOrders(c *gin.Context) {
	orders, err := s.ledger.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) handleListOrdersByStatus(c *gin.Context) {
	orders, err := s.ledger.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) handleListOrdersByDayWeek(c *gin.Context) {
	orders, err := s.ledger.ListByDayWeek(c.Request.Context(), c.Param("day"), c.Param("week"))
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) handleGetOrder(c *gin.Context) {
	order, err := s.ledger.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// handleCreateOrder places a new pickup order. Line items default to
// quantity 1 when the field is omitted, matching the submission form.
func (s *Server) handleCreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	items := make([]models.OrderLineItem, len(req.Items))
	for i, item := range req.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items[i] = models.OrderLineItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   quantity,
		}
	}

	order, err := s.ledger.Create(c.Request.Context(), &models.Order{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		PickupTime:   req.PickupTime,
		Day:          req.Day,
		Week:         req.Week,
		Items:        items,
		TotalPrice:   req.TotalPrice,
	})
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}

	s.collector.RecordOrderCreated()
	c.JSON(http.StatusCreated, order)
}

func (s *Server) handleUpdateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	order, err := s.ledger.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}

	s.collector.RecordStatusUpdate("order", order.Status)
	c.JSON(http.StatusOK, order)
}

func (s *Server) handleDeleteOrder(c *gin.Context) {
	if err := s.ledger.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
