package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/internkaksha/internkaksha-server/internal/apierrors"
	"github.com/internkaksha/internkaksha-server/internal/logger"
	"github.com/internkaksha/internkaksha-server/internal/model"
)

const msgTaskDeleted = "Task deleted successfully"

// TaskService defines task operations performed on behalf of an acting user.
type TaskService interface {
	Create(ctx context.Context, actor model.User, params model.CreateTaskParams) (model.Task, error)
	List(ctx context.Context, actor model.User) ([]model.Task, error)
	Update(ctx context.Context, actor model.User, taskID uuid.UUID, patch model.TaskPatch) (model.Task, error)
	Delete(ctx context.Context, actor model.User, taskID uuid.UUID) error
}

// Task handles the /api/tasks endpoints.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Task) List(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.List(c.UserContext(), actor)
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	return c.JSON(tasks)
}

func (h *Task) Create(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.UserContext(), actor, req.params())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *Task) Update(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.Update(c.UserContext(), actor, taskID, req.patch())
	if err != nil {
		h.logger.Debug("Task handler: update rejected",
			"task_id", taskID,
			"user_id", actor.ID,
			"error", err.Error())
		return err
	}

	return c.JSON(task)
}

func (h *Task) Delete(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.UserContext(), actor, taskID); err != nil {
		h.logger.Debug("Task handler: delete rejected",
			"task_id", taskID,
			"user_id", actor.ID,
			"error", err.Error())
		return err
	}

	return c.JSON(MessageResponse{Message: msgTaskDeleted})
}

func (h *Task) actor(c *fiber.Ctx) (model.User, error) {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return model.User{}, apierrors.NewErrMissingAuthorizationToken()
	}
	return user, nil
}

// taskIDParam parses the :id route parameter. A malformed id cannot name a task.
func taskIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apierrors.NewErrTaskNotFound()
	}
	return id, nil
}
