package api

import (
	"context"
	"fmt"
)

type ActivationKeysService struct {
	client *Client
}

type ActivationKeyCreate struct {
	Name           string `json:"name"`
	OrganizationID int    `json:"organization_id"`
	ContentViewID  int    `json:"content_view_id,omitempty"`
	EnvironmentID  int    `json:"environment_id,omitempty"`
	UnlimitedHosts *bool  `json:"unlimited_hosts,omitempty"`
}

func (s *ActivationKeysService) Create(ctx context.Context, in ActivationKeyCreate) (*ActivationKey, error) {
	var key ActivationKey
	if err := s.client.post(ctx, "/katello/api/activation_keys", in, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

func (s *ActivationKeysService) Get(ctx context.Context, id int) (*ActivationKey, error) {
	var key ActivationKey
	if err := s.client.get(ctx, fmt.Sprintf("/katello/api/activation_keys/%d", id), nil, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// Update repoints the key at a content view / environment pair.
func (s *ActivationKeysService) Update(ctx context.Context, id, contentViewID, environmentID int) (*ActivationKey, error) {
	var key ActivationKey
	body := map[string]int{
		"content_view_id": contentViewID,
		"environment_id":  environmentID,
	}
	if err := s.client.put(ctx, fmt.Sprintf("/katello/api/activation_keys/%d", id), body, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

func (s *ActivationKeysService) AddSubscription(ctx context.Context, id, subscriptionID int) error {
	body := map[string]int{"subscription_id": subscriptionID}
	path := fmt.Sprintf("/katello/api/activation_keys/%d/add_subscriptions", id)
	return s.client.put(ctx, path, body, nil)
}

// ContentOverride forces a repository's enablement state for hosts
// registered with the key.
func (s *ActivationKeysService) ContentOverride(ctx context.Context, id int, contentLabel, value string) error {
	body := map[string]interface{}{
		"content_overrides": []map[string]string{
			{"content_label": contentLabel, "value": value},
		},
	}
	path := fmt.Sprintf("/katello/api/activation_keys/%d/content_override", id)
	return s.client.put(ctx, path, body, nil)
}
