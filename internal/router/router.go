package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RiegL/ostia-visitas-report/internal/handler"
	appointmenthandler "github.com/RiegL/ostia-visitas-report/internal/handler/appointment"
	authhandler "github.com/RiegL/ostia-visitas-report/internal/handler/auth"
	ministerhandler "github.com/RiegL/ostia-visitas-report/internal/handler/minister"
	patienthandler "github.com/RiegL/ostia-visitas-report/internal/handler/patient"
	"github.com/RiegL/ostia-visitas-report/internal/middleware"
	"github.com/RiegL/ostia-visitas-report/pkg/metrics"
	pkgvalidator "github.com/RiegL/ostia-visitas-report/pkg/validator"
)

type Config struct {
	Mode      string
	CORS      middleware.CORSConfig
	RateLimit middleware.RateLimiterConfig
	Timeout   middleware.TimeoutConfig
}

type Router struct {
	engine *gin.Engine
}

func NewRouter(
	cfg Config,
	m *metrics.Metrics,
	authMW *middleware.AuthMiddleware,
	authH *authhandler.Handler,
	patientH *patienthandler.Handler,
	ministerH *ministerhandler.Handler,
	appointmentH *appointmenthandler.Handler,
	healthH *handler.HealthHandler,
) *Router {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	registerValidators()

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.CORS(cfg.CORS))
	engine.Use(middleware.NewRateLimiter(cfg.RateLimit).RateLimit())
	engine.Use(middleware.Timeout(cfg.Timeout))
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health", healthH.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api/v1")
	authH.RegisterRoutes(api, authMW)

	protected := api.Group("", authMW.Authenticate())
	patientH.RegisterRoutes(protected)
	appointmentH.RegisterRoutes(protected)
	ministerH.RegisterRoutes(protected, authMW)

	return &Router{engine: engine}
}

// registerValidators binds custom validation tags used by request structs.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = pkgvalidator.RegisterCustom(v)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
