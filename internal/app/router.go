package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mockapi/internal/handler"
	"mockapi/internal/middleware"
	"mockapi/internal/redis"
	"mockapi/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	PayFastHandler      *handler.PayFastHandler
	OzowHandler         *handler.OzowHandler
	LoadSheddingHandler *handler.LoadSheddingHandler
	TransportHandler    *handler.TransportHandler
	WeatherHandler      *handler.WeatherHandler
	ResponseCache       redis.ResponseCacheInterface // nil disables idempotent replay
	NewRelicApp         *newrelic.Application
	Logger              *slog.Logger
	SimulatedLatency    bool
}

// Simulated upstream latency per simulator.
var (
	loadSheddingLatency = latencyRange{200 * time.Millisecond, 500 * time.Millisecond}
	transportLatency    = latencyRange{400 * time.Millisecond, 700 * time.Millisecond}
	weatherLatency      = latencyRange{300 * time.Millisecond, 500 * time.Millisecond}
)

type latencyRange struct {
	min, max time.Duration
}

// allowedMethods records the served verbs per path, in registration order.
type allowedMethods map[string][]string

// notAllowed answers any verb a known path does not serve with 405 and an
// Allow header.
func (a allowedMethods) notAllowed(c *gin.Context) {
	handler.MethodNotAllowed(a[c.Request.URL.Path]...)(c)
}

type methodHandler struct {
	method  string
	handler gin.HandlerFunc
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	allowed := allowedMethods{}

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.ResponseCache, deps.Logger))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	allowed["/health"] = []string{http.MethodGet}
	allowed["/metrics"] = []string{http.MethodGet}

	latency := func(r latencyRange) []gin.HandlerFunc {
		if !deps.SimulatedLatency {
			return nil
		}
		return []gin.HandlerFunc{middleware.SimulatedLatency(r.min, r.max)}
	}

	// Payment gateway mocks.
	registerSimulator(router, allowed, service.PayFastPath, "payfast", nil,
		methodHandler{http.MethodPost, deps.PayFastHandler.Initiate},
		methodHandler{http.MethodGet, deps.PayFastHandler.Status},
	)
	registerSimulator(router, allowed, service.OzowPath, "ozow", nil,
		methodHandler{http.MethodPost, deps.OzowHandler.Initiate},
		methodHandler{http.MethodGet, deps.OzowHandler.Status},
	)

	// Service mocks.
	registerSimulator(router, allowed, "/api/mocks/services/loadshedding", "loadshedding", latency(loadSheddingLatency),
		methodHandler{http.MethodGet, deps.LoadSheddingHandler.Schedule},
	)
	registerSimulator(router, allowed, "/api/mocks/services/loadshedding/areas", "loadshedding", nil,
		methodHandler{http.MethodGet, deps.LoadSheddingHandler.Areas},
	)
	registerSimulator(router, allowed, "/api/mocks/services/uber", "transport", latency(transportLatency),
		methodHandler{http.MethodGet, deps.TransportHandler.Estimate},
	)
	registerSimulator(router, allowed, "/api/mocks/services/weather", "weather", latency(weatherLatency),
		methodHandler{http.MethodGet, deps.WeatherHandler.Weather},
	)

	router.NoMethod(allowed.notAllowed)

	return router
}

// registerSimulator mounts the served verbs on path and records them for the
// 405 handler.
func registerSimulator(router *gin.Engine, allowed allowedMethods, path, simulator string, before []gin.HandlerFunc, handlers ...methodHandler) {
	for _, h := range handlers {
		chain := append([]gin.HandlerFunc{middleware.Annotate(simulator)}, before...)
		router.Handle(h.method, path, append(chain, h.handler)...)
		allowed[path] = append(allowed[path], h.method)
	}
}
