package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/mock"
	"github.com/MKhiriev/go-taskflow/internal/store"
	"github.com/MKhiriev/go-taskflow/internal/validators"
	"github.com/MKhiriev/go-taskflow/models"
)

func newTestTodoService(t *testing.T) (TodoService, *mock.MockTodoRepository) {
	repo := mock.NewMockTodoRepository(gomock.NewController(t))

	raw := NewTodoService(repo, logger.Nop()).(*todoService)
	raw.now = func() time.Time { return fixedNow }

	return NewTodoValidationService().Wrap(raw), repo
}

func TestTodoService_Add(t *testing.T) {
	svc, repo := newTestTodoService(t)

	repo.EXPECT().CreateTodo(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, fixedNow, task.CreatedAt)
			assert.False(t, task.Completed)
			task.ID = 9
			return task, nil
		})

	task, err := svc.Add(context.Background(), models.Task{UserID: 1, Title: "buy milk", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, int64(9), task.ID)
}

func TestTodoService_Add_EmptyTitle(t *testing.T) {
	svc, _ := newTestTodoService(t)

	_, err := svc.Add(context.Background(), models.Task{UserID: 1, Title: " "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestTodoService_Toggle_Completes(t *testing.T) {
	svc, repo := newTestTodoService(t)

	repo.EXPECT().GetTodo(gomock.Any(), int64(1), int64(4)).
		Return(models.Task{ID: 4, UserID: 1, Title: "t"}, nil)
	repo.EXPECT().SetTodoCompleted(gomock.Any(), int64(1), int64(4), gomock.Not(gomock.Nil())).Return(nil)

	task, err := svc.Toggle(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, fixedNow, *task.CompletedAt)
}

func TestTodoService_Toggle_Reopens(t *testing.T) {
	svc, repo := newTestTodoService(t)
	done := fixedNow.Add(-time.Hour)

	repo.EXPECT().GetTodo(gomock.Any(), int64(1), int64(4)).
		Return(models.Task{ID: 4, UserID: 1, Completed: true, CompletedAt: &done}, nil)
	repo.EXPECT().SetTodoCompleted(gomock.Any(), int64(1), int64(4), gomock.Nil()).Return(nil)

	task, err := svc.Toggle(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
}

func TestTodoService_Toggle_NotFound(t *testing.T) {
	svc, repo := newTestTodoService(t)

	repo.EXPECT().GetTodo(gomock.Any(), int64(1), int64(4)).Return(models.Task{}, store.ErrTodoNotFound)

	_, err := svc.Toggle(context.Background(), 1, 4)
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}

func TestTodoService_ListAndDelete(t *testing.T) {
	svc, repo := newTestTodoService(t)

	repo.EXPECT().ListTodos(gomock.Any(), int64(1)).Return([]models.Task{{ID: 1}}, nil)
	repo.EXPECT().DeleteTodo(gomock.Any(), int64(1), int64(1)).Return(nil)

	tasks, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.NoError(t, svc.Delete(context.Background(), 1, 1))
}
