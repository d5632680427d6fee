// Package base provides the unauthenticated discovery endpoints (root,
// health, version).
package base

import (
	"net/http"
	"time"

	"github.com/bitswalk/uam/src/common/version"
	"github.com/gin-gonic/gin"
)

var VersionInfo *version.Info

// SetVersionInfo sets the version info for the base package
func SetVersionInfo(v *version.Info) {
	VersionInfo = v
}

// NewHandler creates a new base handler
func NewHandler() *Handler {
	return &Handler{}
}

const rootPage = `<!DOCTYPE html>
<html>
<head><title>UAM</title></head>
<body>
<h1>Welcome to the User Access Manager API</h1>
</body>
</html>
`

// HandleRoot returns the HTML greeting page
//
// @Summary      Greeting page
// @Description  Returns a minimal HTML greeting
// @Tags         Base
// @Produce      html
// @Success      200  {string}  string  "HTML greeting"
// @Router       / [get]
func (h *Handler) HandleRoot(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(rootPage))
}

// HandleHealth returns the current health status of the server
//
// @Summary      Health check
// @Description  Returns the current health status of the server
// @Tags         Base
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /v1/health [get]
func (h *Handler) HandleHealth(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}

// HandleVersion returns version and build information for the server
//
// @Summary      Version information
// @Description  Returns version and build information for the server
// @Tags         Base
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /v1/version [get]
func (h *Handler) HandleVersion(c *gin.Context) {
	response := VersionResponse{
		Version:        VersionInfo.Version,
		ReleaseName:    VersionInfo.ReleaseName,
		ReleaseVersion: VersionInfo.ReleaseVersion,
		BuildDate:      VersionInfo.BuildDate,
		GitCommit:      VersionInfo.GitCommit,
		GoVersion:      version.GoVersion(),
	}

	c.JSON(http.StatusOK, response)
}
