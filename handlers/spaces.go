package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyspace/api"
	"studyspace/services/spaces"
)

// SpaceHandler serves the public space catalogue pages.
type SpaceHandler struct {
	Spaces spaces.SpaceService
	Logger *zap.Logger
}

func NewSpaceHandler(svc spaces.SpaceService, logger *zap.Logger) *SpaceHandler {
	return &SpaceHandler{Spaces: svc, Logger: logger}
}

// ListSpacesHandler backs the home and listing pages.
func (h *SpaceHandler) ListSpacesHandler(c *gin.Context) {
	list, err := h.Spaces.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Could not load spaces.")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"spaces": list})
}

// GetSpaceHandler backs the space detail page.
func (h *SpaceHandler) GetSpaceHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid space id"})
		return
	}

	space, err := h.Spaces.Get(c.Request.Context(), id)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Space not found."})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Could not load space.")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"space": space})
}
