package api

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForTask_PollsUntilStopped(t *testing.T) {
	var polls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := polls.Add(1)
		state, result := "running", ""
		if n >= 3 {
			state, result = "stopped", "success"
		}
		fmt.Fprintf(w, `{"id": "abc", "state": %q, "result": %q, "progress": 0.5}`, state, result)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	task, err := c.Tasks.WaitForTask(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, task.Done())
	assert.Equal(t, TaskResultSuccess, task.Result)
	assert.GreaterOrEqual(t, polls.Load(), int32(3))
}

func TestWaitForTask_ErrorResult(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "bad", "label": "Actions::Katello::Repository::Sync",
			"state": "stopped", "result": "error",
			"humanized": {"errors": ["404, message: Not Found"]}}`)
	}))

	task, err := c.Tasks.WaitForTask(context.Background(), "bad")
	require.Error(t, err)
	require.NotNil(t, task)

	var taskErr *TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Contains(t, taskErr.Error(), "Not Found")
}

func TestWaitForTask_ContextDeadline(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "slow", "state": "running"}`)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	task, err := c.Tasks.WaitForTask(ctx, "slow")
	require.Error(t, err)
	require.NotNil(t, task)
	assert.False(t, task.Done())
}

func TestTask_SkipMarkers(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "skip", "state": "stopped", "result": "success",
			"output": {"post_sync_skipped": true},
			"humanized": {"output": "No new packages."}}`)
	}))

	task, err := c.Tasks.Get(context.Background(), "skip")
	require.NoError(t, err)
	assert.True(t, task.Output.PostSyncSkipped)
	assert.Equal(t, "No new packages.", task.Humanized.Output)
}

func TestWaitForSearchedTasks_WaitsForEveryMatch(t *testing.T) {
	var secondPolls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/foreman_tasks/api/tasks":
			assert.Equal(t, "label = Actions::Katello::CapsuleContent::Sync", r.URL.Query().Get("search"))
			fmt.Fprint(w, `{"total": 2, "results": [
				{"id": "t1", "state": "stopped", "result": "success"},
				{"id": "t2", "state": "running"}
			]}`)
		case "/foreman_tasks/api/tasks/t1":
			fmt.Fprint(w, `{"id": "t1", "state": "stopped", "result": "success"}`)
		case "/foreman_tasks/api/tasks/t2":
			state, result := "running", ""
			if secondPolls.Add(1) >= 2 {
				state, result = "stopped", "success"
			}
			fmt.Fprintf(w, `{"id": "t2", "state": %q, "result": %q}`, state, result)
		}
	}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tasks, err := c.Tasks.WaitForSearchedTasks(ctx, "label = Actions::Katello::CapsuleContent::Sync")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.True(t, task.Done())
		assert.Equal(t, TaskResultSuccess, task.Result)
	}
	assert.GreaterOrEqual(t, secondPolls.Load(), int32(2))
}

func TestWaitForSearchedTasks_FailsOnErrorResult(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/foreman_tasks/api/tasks" {
			fmt.Fprint(w, `{"total": 1, "results": [{"id": "t9", "state": "running"}]}`)
			return
		}
		fmt.Fprint(w, `{"id": "t9", "state": "stopped", "result": "error",
			"humanized": {"errors": ["sync failed"]}}`)
	}))

	_, err := c.Tasks.WaitForSearchedTasks(context.Background(), "id = t9")
	var taskErr *TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Contains(t, taskErr.Error(), "sync failed")
}

func TestPromote_AddsEnvironmentMembership(t *testing.T) {
	envs := []string{`{"id": 1, "name": "Library"}`}
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			envs = append(envs, `{"id": 2, "name": "DEV"}`)
			fmt.Fprint(w, `{"id": "promote-1", "state": "stopped", "result": "success"}`)
		case r.URL.Path == "/foreman_tasks/api/tasks/promote-1":
			fmt.Fprint(w, `{"id": "promote-1", "state": "stopped", "result": "success"}`)
		default:
			fmt.Fprintf(w, `{"id": 30, "version": "1.0", "environments": [%s]}`,
				joinJSON(envs))
		}
	}))

	ctx := context.Background()
	_, err := c.ContentViews.Promote(ctx, 30, 2, false)
	require.NoError(t, err)

	cvv, err := c.ContentViews.GetVersion(ctx, 30)
	require.NoError(t, err)
	require.Len(t, cvv.Environments, 2)
	assert.Equal(t, "Library", cvv.Environments[0].Name)
	assert.Equal(t, "DEV", cvv.Environments[1].Name)
}

func joinJSON(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
