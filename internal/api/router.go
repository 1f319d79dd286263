package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"job_recommendation/internal/config"
	"job_recommendation/internal/logger"
)

// NewRouter creates and configures the Gin router.
func NewRouter(cfg *config.Config, jobs JobStore, recommender Recommender, log *logger.Logger, version string) *gin.Engine {
	if strings.EqualFold(cfg.LogLevel, "DEBUG") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	useJSONFieldNames()

	router := gin.New()

	router.Use(Recovery(log))
	router.Use(RequestLogger(log))
	router.Use(CORS())

	handler := NewHandler(jobs, recommender, log, version)

	router.GET("/", handler.Welcome)
	router.GET("/health", handler.HealthCheck)

	router.POST("/add_job", handler.AddJob)
	router.POST("/recommend", handler.Recommend)

	router.GET("/jobs", handler.ListJobs)
	router.GET("/jobs/:job_id", handler.GetJob)

	return router
}
