package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type SubscriptionsService struct {
	client *Client
}

// Search finds subscriptions by name within an organization; a freshly
// created product exposes a subscription under the product's name.
func (s *SubscriptionsService) Search(ctx context.Context, orgID int, name string) ([]Subscription, error) {
	q := url.Values{
		"organization_id": {strconv.Itoa(orgID)},
		"search":          {fmt.Sprintf("name=%q", name)},
	}
	var resp listResponse[Subscription]
	if err := s.client.get(ctx, "/katello/api/subscriptions", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

type ErrataService struct {
	client *Client
}

// ListByRepository returns the errata a synced repository carries.
func (s *ErrataService) ListByRepository(ctx context.Context, repoID int, search string) ([]Erratum, error) {
	q := url.Values{"repository_id": {strconv.Itoa(repoID)}}
	if search != "" {
		q.Set("search", search)
	}
	var resp listResponse[Erratum]
	if err := s.client.get(ctx, "/katello/api/errata", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

type HostsService struct {
	client *Client
}

func (s *HostsService) Search(ctx context.Context, query string) ([]Host, error) {
	q := url.Values{"search": {query}}
	var resp listResponse[Host]
	if err := s.client.get(ctx, "/api/v2/hosts", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Ping checks the API is up; the status endpoint needs no Katello context.
func (c *Client) Ping(ctx context.Context) error {
	var status struct {
		Result string `json:"result"`
	}
	if err := c.get(ctx, "/api/v2/ping", nil, &status); err != nil {
		return err
	}
	return nil
}
