package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskify-app/taskify-api/internal/dto"
	"github.com/taskify-app/taskify-api/internal/logger"
	"github.com/taskify-app/taskify-api/internal/middleware"
	"github.com/taskify-app/taskify-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers. The caller identity
// resolved by the auth middleware is threaded into every service call.
type TaskHandler struct {
	taskService *services.TaskService
	log         *logger.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, log *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		log:         log,
	}
}

// Create creates a new task owned by the caller.
func (h *TaskHandler) Create(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse("Authentication required"))
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", validationMessages(err)...))
		return
	}
	if !req.Priority.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", "priority must be 0 (Low), 1 (Medium) or 2 (High)"))
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     *req.DueDate,
		Priority:    *req.Priority,
	}, callerID)
	if err != nil {
		h.log.Error("task creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse("An internal server error occurred. Please try again later."))
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.ToTaskResponse(*task), "Task created successfully"))
}

// Get returns one of the caller's tasks by id.
func (h *TaskHandler) Get(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse("Authentication required"))
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(taskID, callerID)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToTaskResponse(*task), "Task retrieved successfully"))
}

// List returns all of the caller's tasks, newest first.
func (h *TaskHandler) List(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse("Authentication required"))
		return
	}

	tasks, err := h.taskService.ListAll(callerID)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToTaskResponses(tasks), "Tasks retrieved successfully"))
}

// Filter returns one page of the caller's tasks matching the query filters.
func (h *TaskHandler) Filter(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse("Authentication required"))
		return
	}

	var req dto.TaskFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", "invalid filter parameters"))
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", "status must be 0 (Pending) or 1 (Completed)"))
		return
	}
	if req.Priority != nil && !req.Priority.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", "priority must be 0 (Low), 1 (Medium) or 2 (High)"))
		return
	}

	input := services.TaskFilterInput{
		Status:     req.Status,
		Priority:   req.Priority,
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
	}
	tasks, total, err := h.taskService.ListFiltered(input, callerID)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	page := req.PageNumber
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(
		dto.ToTaskListResponse(tasks, page, pageSize, total),
		"Tasks retrieved successfully"))
}

// Update applies a partial patch to one of the caller's tasks.
func (h *TaskHandler) Update(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse("Authentication required"))
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", validationMessages(err)...))
		return
	}
	if req.Priority != nil && !req.Priority.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", "priority must be 0 (Low), 1 (Medium) or 2 (High)"))
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", "status must be 0 (Pending) or 1 (Completed)"))
		return
	}

	task, err := h.taskService.Update(taskID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
	}, callerID)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToTaskResponse(*task), "Task updated successfully"))
}

// Delete removes one of the caller's tasks.
func (h *TaskHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse("Authentication required"))
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(taskID, callerID); err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(nil, "Task deleted successfully"))
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse("Task not found"))
	case errors.Is(err, services.ErrTitleEmpty):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", "title cannot be empty"))
	default:
		h.log.Error("task operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse("An internal server error occurred. Please try again later."))
	}
}

func parseTaskID(c *gin.Context) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", "invalid task id"))
		return 0, false
	}
	return taskID, true
}
