package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports the bridge status and the scsynth endpoint it
// targets. UDP gives no liveness signal, so the endpoint is reported as
// configured rather than probed.
func HealthCheck(scAddr, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": version,
			"supercollider": gin.H{
				"addr":      scAddr,
				"transport": "udp",
			},
		})
	}
}
