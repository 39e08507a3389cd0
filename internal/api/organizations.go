package api

import (
	"context"
	"fmt"
	"net/url"
)

type OrganizationsService struct {
	client *Client
}

// OrganizationCreate is the payload for creating an organization. Smart
// proxy IDs bind the organization to capsules at creation time.
type OrganizationCreate struct {
	Name          string `json:"name"`
	Label         string `json:"label,omitempty"`
	Description   string `json:"description,omitempty"`
	SmartProxyIDs []int  `json:"smart_proxy_ids,omitempty"`
}

func (s *OrganizationsService) Create(ctx context.Context, in OrganizationCreate) (*Organization, error) {
	var org Organization
	body := map[string]interface{}{"organization": in}
	if err := s.client.post(ctx, "/katello/api/organizations", body, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *OrganizationsService) Get(ctx context.Context, id int) (*Organization, error) {
	var org Organization
	if err := s.client.get(ctx, fmt.Sprintf("/katello/api/organizations/%d", id), nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *OrganizationsService) List(ctx context.Context, search string) ([]Organization, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	var resp listResponse[Organization]
	if err := s.client.get(ctx, "/katello/api/organizations", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (s *OrganizationsService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/katello/api/organizations/%d", id))
}
