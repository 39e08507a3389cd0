package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"k8s.io/klog/v2"
)

// ClientConfig carries the connection parameters for the platform API.
type ClientConfig struct {
	BaseURL  string
	Username string
	Password string

	// VerifyTLS is off for lab deployments with self-signed certificates.
	VerifyTLS bool

	// RequestTimeout bounds each HTTP round trip on top of the caller's
	// context.
	RequestTimeout time.Duration

	// RateLimit/RateBurst throttle outgoing requests so fixture-heavy
	// suites do not hammer the server.
	RateLimit float64
	RateBurst int

	// PollInterval is the initial backoff interval for task polling.
	PollInterval time.Duration
}

func (c ClientConfig) withDefaults() ClientConfig {
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.RateLimit == 0 {
		c.RateLimit = 10
	}
	if c.RateBurst == 0 {
		c.RateBurst = 20
	}
	if c.PollInterval == 0 {
		c.PollInterval = 2 * time.Second
	}
	return c
}

// Client talks to the platform's JSON API with basic auth.
type Client struct {
	cfg     ClientConfig
	http    *http.Client
	limiter *rate.Limiter

	Organizations         *OrganizationsService
	Products              *ProductsService
	Repositories          *RepositoriesService
	ContentViews          *ContentViewsService
	LifecycleEnvironments *LifecycleEnvironmentsService
	Capsules              *CapsulesService
	ActivationKeys        *ActivationKeysService
	Subscriptions         *SubscriptionsService
	Errata                *ErrataService
	Hosts                 *HostsService
	Tasks                 *TasksService
}

func NewClient(cfg ClientConfig) (*Client, error) {
	cfg = cfg.withDefaults()
	if cfg.BaseURL == "" {
		return nil, errors.New("api: base URL is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("api: credentials are required")
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: !cfg.VerifyTLS}

	c := &Client{
		cfg:     cfg,
		http:    &http.Client{Transport: transport},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
	c.Organizations = &OrganizationsService{c}
	c.Products = &ProductsService{c}
	c.Repositories = &RepositoriesService{c}
	c.ContentViews = &ContentViewsService{c}
	c.LifecycleEnvironments = &LifecycleEnvironmentsService{c}
	c.Capsules = &CapsulesService{c}
	c.ActivationKeys = &ActivationKeysService{c}
	c.Subscriptions = &SubscriptionsService{c}
	c.Errata = &ErrataService{c}
	c.Hosts = &HostsService{c}
	c.Tasks = &TasksService{c}
	return c, nil
}

// APIError is the decoded body of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, strings.Join(e.Errors, "; "))
	}
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// listResponse is the platform's collection envelope.
type listResponse[T any] struct {
	Total    int `json:"total"`
	Subtotal int `json:"subtotal"`
	Results  []T `json:"results"`
}

// do performs one JSON request. A nil out skips response decoding.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	if !c.limiter.Allow() {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "api: rate limiter")
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "api: marshal %s %s", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrapf(err, "api: build %s %s", method, path)
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	klog.V(2).Infof("api: %s %s", method, path)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "api: %s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "api: read %s %s", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "api: decode %s %s", method, path)
	}
	return nil
}

func decodeAPIError(status int, data []byte) error {
	apiErr := &APIError{StatusCode: status}
	var body struct {
		Error struct {
			Message     string          `json:"message"`
			FullMessage string          `json:"full_messages"`
			Errors      json.RawMessage `json:"errors"`
		} `json:"error"`
		DisplayMessage string `json:"displayMessage"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Message = body.Error.Message
		if apiErr.Message == "" {
			apiErr.Message = body.DisplayMessage
		}
		apiErr.Errors = flattenErrors(body.Error.Errors)
	}
	if apiErr.Message == "" && len(apiErr.Errors) == 0 {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	return apiErr
}

// flattenErrors normalizes the error payload, which the platform returns
// either as a list of strings or as a field->messages map.
func flattenErrors(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var asList []string
	if err := json.Unmarshal(raw, &asList); err == nil {
		return asList
	}
	var asMap map[string][]string
	if err := json.Unmarshal(raw, &asMap); err == nil {
		var out []string
		for field, msgs := range asMap {
			for _, msg := range msgs {
				out = append(out, field+" "+msg)
			}
		}
		return out
	}
	return []string{string(raw)}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
