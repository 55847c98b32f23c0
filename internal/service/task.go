package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/internkaksha/internkaksha-server/internal/apierrors"
	"github.com/internkaksha/internkaksha-server/internal/logger"
	"github.com/internkaksha/internkaksha-server/internal/model"
)

const (
	msgNotAuthorizedToUpdate = "Not authorized to update this task"
	msgNotAuthorizedToDelete = "Not authorized to delete this task"
)

type Task struct {
	taskStore model.TaskStore
	logger    *logger.Logger
}

func NewTask(taskStore model.TaskStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		logger:    logger,
	}
}

// Create stores a new task owned by actor. Unset optional fields take their defaults.
func (s *Task) Create(ctx context.Context, actor model.User, params model.CreateTaskParams) (model.Task, error) {
	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Description) == "" {
		return model.Task{}, apierrors.NewErrValidation("Title and description are required", nil)
	}

	task := model.Task{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		Difficulty:  model.DifficultyMedium,
		Deadline:    params.Deadline,
		Status:      model.StatusPending,
		CreatedBy:   actor.ID,
	}
	if params.Points != nil {
		task.Points = *params.Points
	}
	if params.Difficulty != nil {
		task.Difficulty = *params.Difficulty
	}
	if params.Status != nil {
		task.Status = *params.Status
	}

	if err := validateTask(task); err != nil {
		return model.Task{}, err
	}

	task, err := s.taskStore.Create(ctx, task)
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"user_id", actor.ID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task service: task created",
		"task_id", task.ID,
		"user_id", actor.ID)

	return task, nil
}

// List returns the tasks actor created, newest first.
func (s *Task) List(ctx context.Context, actor model.User) ([]model.Task, error) {
	tasks, err := s.taskStore.GetByCreator(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by creator: %w", err)
	}

	return tasks, nil
}

// Update applies patch to a task owned by actor.
func (s *Task) Update(ctx context.Context, actor model.User, taskID uuid.UUID, patch model.TaskPatch) (model.Task, error) {
	task, err := s.ownedTask(ctx, actor, taskID, msgNotAuthorizedToUpdate)
	if err != nil {
		return model.Task{}, err
	}

	updated := patch.Apply(task)
	if err := validateTask(updated); err != nil {
		return model.Task{}, err
	}

	updated, err = s.taskStore.Update(ctx, updated)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apierrors.NewErrTaskNotFound()
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("Task service: task updated",
		"task_id", taskID,
		"user_id", actor.ID)

	return updated, nil
}

// Delete removes a task owned by actor.
func (s *Task) Delete(ctx context.Context, actor model.User, taskID uuid.UUID) error {
	if _, err := s.ownedTask(ctx, actor, taskID, msgNotAuthorizedToDelete); err != nil {
		return err
	}

	err := s.taskStore.Delete(ctx, taskID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrTaskNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task service: task deleted",
		"task_id", taskID,
		"user_id", actor.ID)

	return nil
}

// ownedTask loads a task and checks that actor created it.
// Admins get no bypass: only the creator may modify a task.
func (s *Task) ownedTask(ctx context.Context, actor model.User, taskID uuid.UUID, deniedMsg string) (model.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apierrors.NewErrTaskNotFound()
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	if task.CreatedBy != actor.ID {
		s.logger.Info("Task service: ownership check failed",
			"task_id", taskID,
			"user_id", actor.ID)
		return model.Task{}, apierrors.NewErrForbidden(deniedMsg)
	}

	return task, nil
}

func validateTask(t model.Task) error {
	switch {
	case strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Description) == "":
		return apierrors.NewErrValidation("Title and description are required", nil)
	case t.Points < 0:
		return apierrors.NewErrValidation("Points must not be negative", nil)
	case t.Points > math.MaxInt32:
		return apierrors.NewErrValidation("Points must not exceed 2147483647", nil)
	case !t.Difficulty.IsValid():
		return apierrors.NewErrValidation("Invalid difficulty", nil)
	case !t.Status.IsValid():
		return apierrors.NewErrValidation("Invalid status", nil)
	}
	return nil
}
