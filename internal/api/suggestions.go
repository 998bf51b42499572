package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createSuggestionRequest struct {
	CustomerName string `json:"customerName"`
	Content      string `json:"content"`
}

func (s *Server) handleListSuggestions(c *gin.Context) {
	suggestions, err := s.suggestions.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Suggestion not found")
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

func (s *Server) handleGetSuggestion(c *gin.Context) {
	suggestion, err := s.suggestions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Suggestion not found")
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

func (s *Server) handleCreateSuggestion(c *gin.Context) {
	var req createSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	suggestion, err := s.suggestions.Create(c.Request.Context(), req.CustomerName, req.Content)
	if err != nil {
		respondError(c, err, "Suggestion not found")
		return
	}

	s.collector.RecordSuggestionCreated()
	c.JSON(http.StatusCreated, suggestion)
}

func (s *Server) handleUpdateSuggestionStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	suggestion, err := s.suggestions.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Suggestion not found")
		return
	}

	s.collector.RecordStatusUpdate("suggestion", suggestion.Status)
	c.JSON(http.StatusOK, suggestion)
}

func (s *Server) handleDeleteSuggestion(c *gin.Context) {
	if err := s.suggestions.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Suggestion not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Suggestion deleted"})
}
