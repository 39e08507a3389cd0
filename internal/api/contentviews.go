package api

import (
	"context"
	"fmt"
)

type ContentViewsService struct {
	client *Client
}

type ContentViewCreate struct {
	Name           string `json:"name"`
	OrganizationID int    `json:"organization_id"`
	Composite      bool   `json:"composite,omitempty"`
	ComponentIDs   []int  `json:"component_ids,omitempty"`
}

func (s *ContentViewsService) Create(ctx context.Context, in ContentViewCreate) (*ContentView, error) {
	var cv ContentView
	if err := s.client.post(ctx, "/katello/api/content_views", in, &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

func (s *ContentViewsService) Get(ctx context.Context, id int) (*ContentView, error) {
	var cv ContentView
	if err := s.client.get(ctx, fmt.Sprintf("/katello/api/content_views/%d", id), nil, &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

// Update replaces updatable attributes; for composite views component_ids
// swaps the set of component versions.
func (s *ContentViewsService) Update(ctx context.Context, id int, body map[string]interface{}) (*ContentView, error) {
	var cv ContentView
	if err := s.client.put(ctx, fmt.Sprintf("/katello/api/content_views/%d", id), body, &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

// AddRepository attaches a repository to the view, keeping existing ones.
func (s *ContentViewsService) AddRepository(ctx context.Context, id, repoID int) (*ContentView, error) {
	cv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ids := append(append([]int{}, cv.RepositoryIDs...), repoID)
	return s.Update(ctx, id, map[string]interface{}{"repository_ids": ids})
}

// Publish creates the next version of the view and waits for it.
func (s *ContentViewsService) Publish(ctx context.Context, id int) (*Task, error) {
	var task Task
	if err := s.client.post(ctx, fmt.Sprintf("/katello/api/content_views/%d/publish", id), nil, &task); err != nil {
		return nil, err
	}
	return s.client.Tasks.WaitForTask(ctx, task.ID)
}

func (s *ContentViewsService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/katello/api/content_views/%d", id))
}

func (s *ContentViewsService) GetVersion(ctx context.Context, versionID int) (*ContentViewVersion, error) {
	var cvv ContentViewVersion
	path := fmt.Sprintf("/katello/api/content_view_versions/%d", versionID)
	if err := s.client.get(ctx, path, nil, &cvv); err != nil {
		return nil, err
	}
	return &cvv, nil
}

// Promote makes the version visible in one more lifecycle environment and
// waits for the promotion task. Promotion adds membership; it never copies
// content or removes the version from environments it already occupies.
// Promoting past the immediate next environment in the chain requires force.
func (s *ContentViewsService) Promote(ctx context.Context, versionID, envID int, force bool) (*Task, error) {
	body := map[string]interface{}{"environment_ids": []int{envID}, "force": force}
	var task Task
	path := fmt.Sprintf("/katello/api/content_view_versions/%d/promote", versionID)
	if err := s.client.post(ctx, path, body, &task); err != nil {
		return nil, err
	}
	return s.client.Tasks.WaitForTask(ctx, task.ID)
}

// IncrementalUpdate builds a minor version on top of versionID carrying the
// given errata into the listed environments, without touching registered
// hosts.
func (s *ContentViewsService) IncrementalUpdate(ctx context.Context, versionID int, envIDs []int, errataIDs []string) (*Task, error) {
	body := map[string]interface{}{
		"content_view_version_environments": []map[string]interface{}{
			{"content_view_version_id": versionID, "environment_ids": envIDs},
		},
		"add_content": map[string]interface{}{"errata_ids": errataIDs},
	}
	var task Task
	if err := s.client.post(ctx, "/katello/api/content_view_versions/incremental_update", body, &task); err != nil {
		return nil, err
	}
	return s.client.Tasks.WaitForTask(ctx, task.ID)
}
