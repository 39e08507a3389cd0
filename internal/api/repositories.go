package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type RepositoriesService struct {
	client *Client
}

// Repository content types understood by the harness.
const (
	ContentTypeYum    = "yum"
	ContentTypeDocker = "docker"
)

type RepositoryCreate struct {
	Name               string `json:"name"`
	ProductID          int    `json:"product_id"`
	ContentType        string `json:"content_type"`
	URL                string `json:"url,omitempty"`
	DownloadPolicy     string `json:"download_policy,omitempty"`
	MirrorOnSync       *bool  `json:"mirror_on_sync,omitempty"`
	DockerUpstreamName string `json:"docker_upstream_name,omitempty"`
	Unprotected        *bool  `json:"unprotected,omitempty"`
}

// RepositoryUpdate carries only the fields being changed.
type RepositoryUpdate struct {
	Name               *string `json:"name,omitempty"`
	URL                *string `json:"url,omitempty"`
	DownloadPolicy     *string `json:"download_policy,omitempty"`
	DockerUpstreamName *string `json:"docker_upstream_name,omitempty"`
}

func (s *RepositoriesService) Create(ctx context.Context, in RepositoryCreate) (*Repository, error) {
	var repo Repository
	if err := s.client.post(ctx, "/katello/api/repositories", in, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (s *RepositoriesService) Get(ctx context.Context, id int) (*Repository, error) {
	var repo Repository
	if err := s.client.get(ctx, fmt.Sprintf("/katello/api/repositories/%d", id), nil, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (s *RepositoriesService) Update(ctx context.Context, id int, in RepositoryUpdate) (*Repository, error) {
	var repo Repository
	if err := s.client.put(ctx, fmt.Sprintf("/katello/api/repositories/%d", id), in, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (s *RepositoriesService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/katello/api/repositories/%d", id))
}

// ListByEnvironment returns the repositories visible in a lifecycle
// environment, i.e. carried by content view versions promoted into it.
func (s *RepositoriesService) ListByEnvironment(ctx context.Context, envID int) ([]Repository, error) {
	q := url.Values{"environment_id": {strconv.Itoa(envID)}}
	var resp listResponse[Repository]
	if err := s.client.get(ctx, "/katello/api/repositories", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Sync starts a repository synchronization and waits for the task to stop.
// The returned task carries the skip marker and humanized output the
// change-detection assertions read.
func (s *RepositoriesService) Sync(ctx context.Context, id int) (*Task, error) {
	var task Task
	if err := s.client.post(ctx, fmt.Sprintf("/katello/api/repositories/%d/sync", id), nil, &task); err != nil {
		return nil, err
	}
	return s.client.Tasks.WaitForTask(ctx, task.ID)
}
