package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskforce/internal/repository"
	"github.com/yukikurage/taskforce/internal/store/storetest"
)

func newBacklogService() (*BacklogService, *storetest.Fake) {
	fake := storetest.New()
	return NewBacklogService(repository.NewExpectedTaskRepository(fake)), fake
}

func TestBacklogService_EmptyOptionalFieldsAreStoredAsNull(t *testing.T) {
	svc, fake := newBacklogService()

	_, err := svc.Add(context.Background(), AddTaskInput{Description: "Design homepage", Deadline: "", Note: ""})
	require.NoError(t, err)

	inserted := fake.Inserted()
	require.Len(t, inserted, 1)
	assert.Equal(t, "expected_tasks", inserted[0].Table)
	assert.Equal(t, map[string]any{
		"description": "Design homepage",
		"deadline":    nil,
		"note":        nil,
	}, inserted[0].Row)
}

func TestBacklogService_AddThenListIncludesTask(t *testing.T) {
	svc, _ := newBacklogService()
	ctx := context.Background()

	added, err := svc.Add(ctx, AddTaskInput{
		Description: "Write release notes",
		Deadline:    "2025-06-30T17:00",
		Note:        "for v2",
	})
	require.NoError(t, err)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, added.ID, tasks[0].ID)
	assert.Equal(t, "Write release notes", tasks[0].Description)
	require.NotNil(t, tasks[0].Deadline)
	assert.Equal(t, 17, tasks[0].Deadline.Hour())
	require.NotNil(t, tasks[0].Note)
	assert.Equal(t, "for v2", *tasks[0].Note)
}

func TestBacklogService_AddWithoutDeadlineListsNullDeadline(t *testing.T) {
	svc, _ := newBacklogService()
	ctx := context.Background()

	_, err := svc.Add(ctx, AddTaskInput{Description: "Fix login bug"})
	require.NoError(t, err)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Nil(t, tasks[0].Deadline)
}

func TestBacklogService_AddValidation(t *testing.T) {
	svc, fake := newBacklogService()
	ctx := context.Background()

	_, err := svc.Add(ctx, AddTaskInput{Description: "  "})
	assert.ErrorIs(t, err, ErrDescriptionRequired)

	_, err = svc.Add(ctx, AddTaskInput{Description: "Deploy", Deadline: "soon"})
	assert.ErrorIs(t, err, ErrInvalidDeadline)

	assert.Zero(t, fake.Calls(storetest.OpInsert))
}

func TestBacklogService_Remove(t *testing.T) {
	svc, _ := newBacklogService()
	ctx := context.Background()

	task, err := svc.Add(ctx, AddTaskInput{Description: "Deploy"})
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, task.ID))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.ErrorIs(t, svc.Remove(ctx, 0), ErrInvalidID)
}
