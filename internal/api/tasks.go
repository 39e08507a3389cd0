package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Task states and results as reported by the platform's task engine.
const (
	TaskStateRunning = "running"
	TaskStatePaused  = "paused"
	TaskStateStopped = "stopped"

	TaskResultSuccess = "success"
	TaskResultWarning = "warning"
	TaskResultError   = "error"
)

// Task is an asynchronous server-side operation.
type Task struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	State     string     `json:"state"`
	Result    string     `json:"result"`
	Progress  float64    `json:"progress"`
	StartedAt string     `json:"started_at"`
	EndedAt   string     `json:"ended_at"`
	Humanized TaskOutput `json:"humanized"`
	Output    struct {
		PostSyncSkipped bool `json:"post_sync_skipped"`
	} `json:"output"`
}

// TaskOutput is the human-readable rendering of the task outcome.
type TaskOutput struct {
	Action string   `json:"action"`
	Output string   `json:"output"`
	Errors []string `json:"errors"`
}

// Done reports whether the task has reached a terminal state.
func (t *Task) Done() bool {
	return t.State == TaskStateStopped
}

// TaskError is returned when a task stops in a non-success result.
type TaskError struct {
	Task *Task
}

func (e *TaskError) Error() string {
	msg := e.Task.Humanized.Output
	if len(e.Task.Humanized.Errors) > 0 {
		msg = fmt.Sprintf("%v", e.Task.Humanized.Errors)
	}
	return fmt.Sprintf("task %s (%s) finished with result %q: %s",
		e.Task.ID, e.Task.Label, e.Task.Result, msg)
}

type TasksService struct {
	client *Client
}

func (s *TasksService) Get(ctx context.Context, id string) (*Task, error) {
	var task Task
	if err := s.client.get(ctx, "/foreman_tasks/api/tasks/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Search returns the tasks matching a task-engine search query.
func (s *TasksService) Search(ctx context.Context, query string) ([]Task, error) {
	q := url.Values{"search": {query}}
	var resp listResponse[Task]
	if err := s.client.get(ctx, "/foreman_tasks/api/tasks", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// WaitForTask polls the task until it stops or the context expires. A task
// stopping with an error or warning result returns a *TaskError wrapping
// the final task state.
func (s *TasksService) WaitForTask(ctx context.Context, id string) (*Task, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.client.cfg.PollInterval
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0 // the context deadline bounds the wait

	var task *Task
	poll := func() error {
		got, err := s.Get(ctx, id)
		if err != nil {
			// transient fetch failures keep the poll alive
			klog.V(2).Infof("task %s: poll error: %v", id, err)
			return err
		}
		task = got
		if !task.Done() {
			return errors.Errorf("task %s still %s (%.0f%%)", id, task.State, task.Progress*100)
		}
		return nil
	}

	if err := backoff.Retry(poll, backoff.WithContext(bo, ctx)); err != nil {
		if task != nil {
			return task, errors.Wrapf(err, "waiting for task %s", id)
		}
		return nil, errors.Wrapf(err, "waiting for task %s", id)
	}

	if task.Result != TaskResultSuccess {
		return task, &TaskError{Task: task}
	}
	return task, nil
}

// WaitForSearchedTasks waits for every task matching the query and fails on
// the first one that does not succeed.
func (s *TasksService) WaitForSearchedTasks(ctx context.Context, query string) ([]Task, error) {
	found, err := s.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]Task, 0, len(found))
	for _, t := range found {
		done, err := s.WaitForTask(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *done)
	}
	return out, nil
}
