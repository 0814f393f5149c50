package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gridlined/Itemizer/internal/core/ports/services"
)

// getDashboard godoc
// @Summary Dashboard landing payload
// @Description Returns the section and page titles the frontend dashboard renders.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sectionTitle": "Itemizer",
		"pageTitle":    "Dashboard",
	})
}

// registerHomeRoutes registers the public landing routes.
func registerHomeRoutes(r *gin.Engine, _ *portssvc.ServiceContainer) {
	r.GET("/", getDashboard)
}
