package handler

import (
	"errors"
	"math"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/internkaksha/internkaksha-server/internal/model"
	"github.com/internkaksha/internkaksha-server/internal/password"
)

const dateLayout = "2006-01-02"

var (
	errInvalidDate     = errors.New("must be an RFC 3339 timestamp or a YYYY-MM-DD date")
	errPasswordTooLong = errors.New("must be at most 72 bytes")
)

type registerRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Role           string  `json:"role"`
	InternshipRole *string `json:"internshipRole"`
	Department     *string `json:"department"`
	Duration       *string `json:"duration"`
	StartDate      string  `json:"startDate"`
}

func (r *registerRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))

	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&r.Password, validation.Required, validation.By(passwordLength)),
		validation.Field(&r.Role, validation.In(string(model.RoleAdmin), string(model.RoleIntern))),
		validation.Field(&r.StartDate, validation.By(validDate)),
	)
}

func (r *registerRequest) params() model.RegisterParams {
	startDate, _ := parseDate(r.StartDate)
	return model.RegisterParams{
		Name:           strings.TrimSpace(r.Name),
		Email:          strings.TrimSpace(r.Email),
		Password:       r.Password,
		Role:           model.Role(r.Role),
		InternshipRole: r.InternshipRole,
		Department:     r.Department,
		Duration:       r.Duration,
		StartDate:      startDate,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)

	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Points      *int    `json:"points"`
	Difficulty  *string `json:"difficulty"`
	Deadline    *string `json:"deadline"`
	Status      *string `json:"status"`
}

func (r *createTaskRequest) Validate() error {
	r.Difficulty = upper(r.Difficulty)
	r.Status = upper(r.Status)

	return validation.ValidateStruct(r,
		validation.Field(&r.Points, validation.Min(0), validation.Max(math.MaxInt32)),
		validation.Field(&r.Difficulty, difficultyRule),
		validation.Field(&r.Status, statusRule),
		validation.Field(&r.Deadline, validation.By(validDate)),
	)
}

func (r *createTaskRequest) params() model.CreateTaskParams {
	deadline, _ := parseDatePtr(r.Deadline)
	return model.CreateTaskParams{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Points:      r.Points,
		Difficulty:  (*model.TaskDifficulty)(r.Difficulty),
		Deadline:    deadline,
		Status:      (*model.TaskStatus)(r.Status),
	}
}

// updateTaskRequest has no createdBy field: the creator cannot be changed.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Points      *int    `json:"points"`
	Difficulty  *string `json:"difficulty"`
	Deadline    *string `json:"deadline"`
	Status      *string `json:"status"`
}

func (r *updateTaskRequest) Validate() error {
	r.Difficulty = upper(r.Difficulty)
	r.Status = upper(r.Status)

	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.Description, validation.NilOrNotEmpty),
		validation.Field(&r.Points, validation.Min(0), validation.Max(math.MaxInt32)),
		validation.Field(&r.Difficulty, difficultyRule),
		validation.Field(&r.Status, statusRule),
		validation.Field(&r.Deadline, validation.By(validDate)),
	)
}

func (r *updateTaskRequest) patch() model.TaskPatch {
	deadline, _ := parseDatePtr(r.Deadline)
	return model.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Points:      r.Points,
		Difficulty:  (*model.TaskDifficulty)(r.Difficulty),
		Deadline:    deadline,
		Status:      (*model.TaskStatus)(r.Status),
	}
}

var (
	difficultyRule = validation.In(
		string(model.DifficultyEasy),
		string(model.DifficultyMedium),
		string(model.DifficultyHard),
	)
	statusRule = validation.In(
		string(model.StatusPending),
		string(model.StatusInProgress),
		string(model.StatusCompleted),
	)
)

func upper(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*s))
	return &v
}

// parseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
// An empty string yields nil.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return parseDate(*s)
}

func validDate(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return nil
	}

	if _, err := parseDate(s); err != nil {
		return errInvalidDate
	}
	return nil
}

// passwordLength bounds the password in bytes, the unit bcrypt counts.
func passwordLength(value interface{}) error {
	s, _ := value.(string)
	if len(s) > password.MaxPasswordBytes {
		return errPasswordTooLong
	}
	return nil
}
