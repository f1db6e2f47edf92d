package handlers

import (
	"net/http"

	"github.com/credstack/credstack/internal/generator"
	"github.com/gin-gonic/gin"
)

// ToolsHandler serves advisory utilities that need no session.
type ToolsHandler struct{}

// NewToolsHandler constructs a ToolsHandler.
func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

// Strength scores a password configuration without generating anything.
func (h *ToolsHandler) Strength(c *gin.Context) {
	var cfg generator.Config
	if errBind := c.ShouldBindJSON(&cfg); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	c.JSON(http.StatusOK, generator.EstimateStrength(cfg))
}
