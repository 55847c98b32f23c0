//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/internkaksha/internkaksha-server/internal/model"
	repo "github.com/internkaksha/internkaksha-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "internkaksha_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/internkaksha_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(email string, role model.Role) model.User {
	return model.User{
		ID:           uuid.New(),
		Name:         "user",
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
	}
}

func TestUserRepository_Integration(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	u := newUser("user@example.com", model.RoleIntern)
	saved, err := ur.Create(ctx, u)
	require.NoError(t, err)
	require.Equal(t, u.ID, saved.ID)
	require.False(t, saved.CreatedAt.IsZero())

	byEmail, err := ur.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	byID, err := ur.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, model.RoleIntern, byID.Role)

	_, err = ur.Create(ctx, newUser(u.Email, model.RoleAdmin))
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	_, err = ur.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestTaskRepository_Integration(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	tr := repo.NewTaskRepository(conn)

	admin, err := ur.Create(ctx, newUser("admin-tasks@example.com", model.RoleAdmin))
	require.NoError(t, err)
	intern, err := ur.Create(ctx, newUser("intern-tasks@example.com", model.RoleIntern))
	require.NoError(t, err)

	first, err := tr.Create(ctx, model.Task{
		ID: uuid.New(), Title: "first", Difficulty: model.DifficultyEasy,
		Status: model.StatusPending, CreatedBy: admin.ID,
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	deadline := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	second, err := tr.Create(ctx, model.Task{
		ID: uuid.New(), Title: "second", Points: 3, Difficulty: model.DifficultyHard,
		Deadline: &deadline, Status: model.StatusPending, CreatedBy: admin.ID,
	})
	require.NoError(t, err)

	list, err := tr.GetByCreator(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)

	list, err = tr.GetByCreator(ctx, intern.ID)
	require.NoError(t, err)
	require.Empty(t, list)

	first.Status = model.StatusCompleted
	first.CreatedBy = intern.ID
	updated, err := tr.Update(ctx, first)
	require.NoError(t, err)
	require.Equal(t, model.StatusCompleted, updated.Status)
	require.Equal(t, admin.ID, updated.CreatedBy)

	require.NoError(t, tr.Delete(ctx, first.ID))
	require.ErrorIs(t, tr.Delete(ctx, first.ID), model.ErrNotFound)

	_, err = tr.GetByID(ctx, first.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = tr.Create(ctx, model.Task{
		ID: uuid.New(), Title: "negative", Points: -1, Difficulty: model.DifficultyEasy,
		Status: model.StatusPending, CreatedBy: admin.ID,
	})
	require.Error(t, err)
}
