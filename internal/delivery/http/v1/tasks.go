package v1

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/repository"
)

type getTaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newGetTaskResponse(task *models.Task) getTaskResponse {
	return getTaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt.UTC(),
		UpdatedAt:   task.UpdatedAt.UTC(),
	}
}

type dataResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type listResponse struct {
	Success bool              `json:"success"`
	Data    []getTaskResponse `json:"data"`
	Total   int               `json:"total"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// bindBody binds a JSON or form-encoded body by Content-Type. An empty
// body binds as an empty object, leaving the missing fields to the
// repository validation.
func (h *handlerImpl) bindBody(c *gin.Context, req any) bool {
	err := c.ShouldBind(req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.requestLogger(c).Error().
			Err(err).
			Str("content_type", c.ContentType()).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(msgInvalidRequestBody))
		return false
	}
	return true
}

func (h *handlerImpl) abortWithRepositoryError(c *gin.Context, err error) {
	var validationErr *repository.ValidationError
	switch {
	case errors.Is(err, repository.ErrTaskNotFound):
		abort(c, newNotFoundError(msgTaskNotFound))
	case errors.As(err, &validationErr):
		abort(c, newBadRequestError(validationErr.Reason))
	default:
		h.requestLogger(c).Error().
			Err(err).
			Msg("unexpected repository error")
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	tasks, total := h.tasks.List(c.Request.Context(), repository.ListParams{
		Status: models.Status(c.Query("status")),
		Search: c.Query("search"),
	})

	response := make([]getTaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newGetTaskResponse(task)
	}
	c.JSON(http.StatusOK, listResponse{
		Success: true,
		Data:    response,
		Total:   total,
	})
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	task, err := h.tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithRepositoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dataResponse{
		Success: true,
		Data:    newGetTaskResponse(task),
	})
}

type createTaskRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Status      string `json:"status" form:"status"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if !h.bindBody(c, &req) {
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), repository.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.Status(req.Status),
	})
	if err != nil {
		h.abortWithRepositoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dataResponse{
		Success: true,
		Data:    newGetTaskResponse(task),
		Message: "Task created successfully",
	})
}

type updateTaskRequest struct {
	createTaskRequest
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	var req updateTaskRequest
	if !h.bindBody(c, &req) {
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), repository.UpdateTaskParams{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Status:      models.Status(req.Status),
	})
	if err != nil {
		h.abortWithRepositoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dataResponse{
		Success: true,
		Data:    newGetTaskResponse(task),
		Message: "Task updated successfully",
	})
}

type setTaskStatusRequest struct {
	Status string `json:"status" form:"status"`
}

func (h *handlerImpl) HandleSetTaskStatus(c *gin.Context) {
	var req setTaskStatusRequest
	if !h.bindBody(c, &req) {
		return
	}

	task, err := h.tasks.UpdateStatus(c.Request.Context(), repository.UpdateTaskStatusParams{
		ID:     c.Param("id"),
		Status: models.Status(req.Status),
	})
	if err != nil {
		h.abortWithRepositoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dataResponse{
		Success: true,
		Data:    newGetTaskResponse(task),
		Message: "Task status updated successfully",
	})
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	task, err := h.tasks.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithRepositoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dataResponse{
		Success: true,
		Data:    newGetTaskResponse(task),
		Message: "Task deleted successfully",
	})
}
