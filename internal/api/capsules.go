package api

import (
	"context"
	"fmt"
)

type CapsulesService struct {
	client *Client
}

func (s *CapsulesService) Get(ctx context.Context, id int) (*Capsule, error) {
	var capsule Capsule
	if err := s.client.get(ctx, fmt.Sprintf("/katello/api/capsules/%d", id), nil, &capsule); err != nil {
		return nil, err
	}
	return &capsule, nil
}

// AddLifecycleEnvironment subscribes the capsule to an environment so that
// content promoted into it replicates to the capsule.
func (s *CapsulesService) AddLifecycleEnvironment(ctx context.Context, capsuleID, envID int) error {
	body := map[string]int{"environment_id": envID}
	path := fmt.Sprintf("/katello/api/capsules/%d/content/lifecycle_environments", capsuleID)
	return s.client.post(ctx, path, body, nil)
}

func (s *CapsulesService) RemoveLifecycleEnvironment(ctx context.Context, capsuleID, envID int) error {
	path := fmt.Sprintf("/katello/api/capsules/%d/content/lifecycle_environments/%d", capsuleID, envID)
	return s.client.delete(ctx, path)
}

func (s *CapsulesService) ListLifecycleEnvironments(ctx context.Context, capsuleID int) ([]LifecycleEnvironment, error) {
	var resp listResponse[LifecycleEnvironment]
	path := fmt.Sprintf("/katello/api/capsules/%d/content/lifecycle_environments", capsuleID)
	if err := s.client.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// SyncStatus reports in-flight replication tasks and the last completed
// sync time. Suites poll this until active_sync_tasks drains.
func (s *CapsulesService) SyncStatus(ctx context.Context, capsuleID int) (*CapsuleSyncStatus, error) {
	var status CapsuleSyncStatus
	path := fmt.Sprintf("/katello/api/capsules/%d/content/sync", capsuleID)
	if err := s.client.get(ctx, path, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Sync triggers a full capsule content synchronization and waits for it.
func (s *CapsulesService) Sync(ctx context.Context, capsuleID int) (*Task, error) {
	var task Task
	path := fmt.Sprintf("/katello/api/capsules/%d/content/sync", capsuleID)
	if err := s.client.post(ctx, path, nil, &task); err != nil {
		return nil, err
	}
	return s.client.Tasks.WaitForTask(ctx, task.ID)
}

// WaitForSync drains the capsule's active sync tasks after a promote or
// publish kicked off replication.
func (s *CapsulesService) WaitForSync(ctx context.Context, capsuleID int) error {
	status, err := s.SyncStatus(ctx, capsuleID)
	if err != nil {
		return err
	}
	for _, t := range status.ActiveSyncTasks {
		if _, err := s.client.Tasks.WaitForTask(ctx, t.ID); err != nil {
			return err
		}
	}
	return nil
}
