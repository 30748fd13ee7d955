// Package systemdelivery serves the service metadata and health endpoints.
package systemdelivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Service metadata reported by the index endpoint.
const (
	ServiceName    = "Account REST API Service"
	ServiceVersion = "1.0"
)

type indexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Index handles the root URL.
func Index(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, indexResponse{Name: ServiceName, Version: ServiceVersion})
}

// Health reports that the service is up.
func Health(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, healthResponse{Status: "OK"})
}
