package app

import (
	"fmt"
	"net/http"
	"os"

	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/device-management-toolkit/redfish-sync/config"
	"github.com/device-management-toolkit/redfish-sync/pkg/httpserver"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

type healthStatus struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	LastPass  string `json:"lastPass,omitempty"`
	LastError string `json:"lastError,omitempty"`
}

type statusServer struct {
	server *httpserver.Server
}

func newStatusHandler(cfg *config.Config, log logger.Interface, health func() healthStatus) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()
	handler.Use(gin.Recovery())

	handler.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, health())
	})
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Status.Pprof {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("app - status - pprof enabled at /debug/pprof/")
	}

	return handler
}

func newStatusServer(cfg *config.Config, log logger.Interface, health func() healthStatus) *statusServer {
	server := httpserver.New(newStatusHandler(cfg, log, health), httpserver.Port(cfg.Status.Host, cfg.Status.Port))
	log.Info("app - status - listening on %s", server.Addr())

	return &statusServer{server: server}
}

// notify is nil for a disabled server so that selecting on it blocks.
func (s *statusServer) notify() <-chan error {
	if s == nil {
		return nil
	}

	return s.server.Notify()
}

func (s *statusServer) shutdown(log logger.Interface) {
	if err := s.server.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - status - shutdown: %w", err))
	}
}
