package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taskhive/taskhive/internal/container"
	"github.com/taskhive/taskhive/internal/interface/middleware"
)

// DebugModule exposes operational endpoints: Prometheus metrics and expvar.
// Both are rate limited per IP; the config toggles decide which are mounted.
type DebugModule struct {
	Registry *prometheus.Registry
}

func NewDebugModule(reg *prometheus.Registry) *DebugModule {
	return &DebugModule{Registry: reg}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	if cfg == nil || cfg.MetricsEnabled {
		handler := promhttp.Handler()
		if m.Registry != nil {
			handler = promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
		}
		rg.GET("/metrics", rl, gin.WrapH(handler))
	}
	if cfg == nil || cfg.DebugMetricsEnabled {
		rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	}
}
