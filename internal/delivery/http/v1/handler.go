package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/metrics"
	"github.com/adanyl0v/go-task-tracker/internal/repository"
)

type Handler interface {
	HandleRequestContext(c *gin.Context)
	HandleAccessLog(c *gin.Context)
	HandleRecovery(c *gin.Context, recovered any)
	HandleNoRoute(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleSetTaskStatus(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleGetStatuses(c *gin.Context)
	HandleHealth(c *gin.Context)
	// Register installs the middleware chain and every route on router.
	Register(router *gin.Engine)
}

type handlerImpl struct {
	logger  zerolog.Logger
	tasks   repository.TaskRepository
	metrics *metrics.HTTP
	now     func() time.Time
}

// New returns a Handler. httpMetrics may be nil to disable
// request metrics.
func New(
	logger zerolog.Logger,
	taskRepository repository.TaskRepository,
	httpMetrics *metrics.HTTP,
) Handler {
	return &handlerImpl{
		logger:  logger,
		tasks:   taskRepository,
		metrics: httpMetrics,
		now:     time.Now,
	}
}

func (h *handlerImpl) Register(router *gin.Engine) {
	router.Use(
		h.HandleRequestContext,
		h.HandleAccessLog,
		gin.CustomRecoveryWithWriter(nil, h.HandleRecovery),
	)
	router.NoRoute(h.HandleNoRoute)

	api := router.Group("/api")
	api.GET("/tasks", h.HandleGetTasks)
	api.GET("/tasks/:id", h.HandleGetTask)
	api.POST("/tasks", h.HandleCreateTask)
	api.PUT("/tasks/:id", h.HandleUpdateTask)
	api.PATCH("/tasks/:id/status", h.HandleSetTaskStatus)
	api.DELETE("/tasks/:id", h.HandleDeleteTask)
	api.GET("/status", h.HandleGetStatuses)
	api.GET("/health", h.HandleHealth)
}
