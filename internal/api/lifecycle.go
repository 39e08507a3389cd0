package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type LifecycleEnvironmentsService struct {
	client *Client
}

type LifecycleEnvironmentCreate struct {
	Name           string `json:"name"`
	OrganizationID int    `json:"organization_id"`
	PriorID        int    `json:"prior_id,omitempty"`
	// RegistryNamePattern uses the server's template syntax, e.g.
	// "<%= organization.label %>/<%= repository.docker_upstream_name %>".
	RegistryNamePattern string `json:"registry_name_pattern,omitempty"`
}

func (s *LifecycleEnvironmentsService) Create(ctx context.Context, in LifecycleEnvironmentCreate) (*LifecycleEnvironment, error) {
	var env LifecycleEnvironment
	if err := s.client.post(ctx, "/katello/api/environments", in, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (s *LifecycleEnvironmentsService) Get(ctx context.Context, id int) (*LifecycleEnvironment, error) {
	var env LifecycleEnvironment
	if err := s.client.get(ctx, fmt.Sprintf("/katello/api/environments/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// List returns the organization's environments, Library included.
func (s *LifecycleEnvironmentsService) List(ctx context.Context, orgID int, search string) ([]LifecycleEnvironment, error) {
	q := url.Values{"organization_id": {strconv.Itoa(orgID)}}
	if search != "" {
		q.Set("search", search)
	}
	var resp listResponse[LifecycleEnvironment]
	if err := s.client.get(ctx, "/katello/api/environments", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Update changes the registry name pattern. The server rejects a pattern
// that would produce duplicate container repository names for content
// already in the environment; the rejection surfaces as an *APIError.
func (s *LifecycleEnvironmentsService) Update(ctx context.Context, id int, registryNamePattern string) (*LifecycleEnvironment, error) {
	var env LifecycleEnvironment
	body := map[string]string{"registry_name_pattern": registryNamePattern}
	if err := s.client.put(ctx, fmt.Sprintf("/katello/api/environments/%d", id), body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (s *LifecycleEnvironmentsService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/katello/api/environments/%d", id))
}
