package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *handlerImpl) HandleGetStatuses(c *gin.Context) {
	statuses := h.tasks.Statuses()
	response := make([]string, len(statuses))
	for i, status := range statuses {
		response[i] = string(status)
	}

	c.JSON(http.StatusOK, dataResponse{
		Success: true,
		Data:    response,
	})
}

type healthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Success:   true,
		Message:   "Task Manager API is running",
		Timestamp: h.now().UTC(),
	})
}
