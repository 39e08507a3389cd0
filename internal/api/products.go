package api

import (
	"context"
	"fmt"
)

type ProductsService struct {
	client *Client
}

type ProductCreate struct {
	Name           string `json:"name"`
	Label          string `json:"label,omitempty"`
	OrganizationID int    `json:"organization_id"`
}

func (s *ProductsService) Create(ctx context.Context, in ProductCreate) (*Product, error) {
	var prod Product
	if err := s.client.post(ctx, "/katello/api/products", in, &prod); err != nil {
		return nil, err
	}
	return &prod, nil
}

func (s *ProductsService) Get(ctx context.Context, id int) (*Product, error) {
	var prod Product
	if err := s.client.get(ctx, fmt.Sprintf("/katello/api/products/%d", id), nil, &prod); err != nil {
		return nil, err
	}
	return &prod, nil
}

// Update renames the product. Published repository paths pick the new
// label up only after the owning content view is republished.
func (s *ProductsService) Update(ctx context.Context, id int, name string) (*Product, error) {
	var prod Product
	body := map[string]string{"name": name}
	if err := s.client.put(ctx, fmt.Sprintf("/katello/api/products/%d", id), body, &prod); err != nil {
		return nil, err
	}
	return &prod, nil
}

func (s *ProductsService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/katello/api/products/%d", id))
}
