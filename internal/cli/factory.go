package cli

import (
	"context"

	"github.com/google/uuid"
)

// Make* helpers mirror the CLI factory flow: fill in a generated name if
// the caller did not pass one, create the entity, then fetch it back by
// name so the caller gets the server-assigned ids.

func makeName(opts Options) string {
	if name, ok := opts["name"]; ok && name != "" {
		return name
	}
	name := uuid.NewString()
	opts["name"] = name
	return name
}

// infoOptions builds the identifying options for the follow-up info call,
// copying only scope keys the caller actually set.
func infoOptions(name string, opts Options, scopeKeys ...string) Options {
	out := Options{"name": name}
	for _, k := range scopeKeys {
		if v := opts[k]; v != "" {
			out[k] = v
		}
	}
	return out
}

func (c *OrgCommands) Make(ctx context.Context, opts Options) (*Org, error) {
	if opts == nil {
		opts = Options{}
	}
	name := makeName(opts)
	if err := c.Create(ctx, opts); err != nil {
		return nil, err
	}
	return c.Info(ctx, Options{"name": name})
}

func (c *ProductCommands) Make(ctx context.Context, opts Options) (*Product, error) {
	if opts == nil {
		opts = Options{}
	}
	name := makeName(opts)
	if err := c.Create(ctx, opts); err != nil {
		return nil, err
	}
	return c.Info(ctx, infoOptions(name, opts, "organization-id"))
}

func (c *RepositoryCommands) Make(ctx context.Context, opts Options) (*Repository, error) {
	if opts == nil {
		opts = Options{}
	}
	name := makeName(opts)
	if err := c.Create(ctx, opts); err != nil {
		return nil, err
	}
	return c.Info(ctx, infoOptions(name, opts, "product-id", "organization-id"))
}

func (c *ContentViewCommands) Make(ctx context.Context, opts Options) (*ContentView, error) {
	if opts == nil {
		opts = Options{}
	}
	name := makeName(opts)
	if err := c.Create(ctx, opts); err != nil {
		return nil, err
	}
	return c.Info(ctx, infoOptions(name, opts, "organization-id"))
}

func (c *LifecycleEnvironmentCommands) Make(ctx context.Context, opts Options) (*LifecycleEnvironment, error) {
	if opts == nil {
		opts = Options{}
	}
	name := makeName(opts)
	if err := c.Create(ctx, opts); err != nil {
		return nil, err
	}
	return c.Info(ctx, infoOptions(name, opts, "organization-id"))
}

func (c *ActivationKeyCommands) Make(ctx context.Context, opts Options) (*ActivationKey, error) {
	if opts == nil {
		opts = Options{}
	}
	name := makeName(opts)
	if err := c.Create(ctx, opts); err != nil {
		return nil, err
	}
	return c.Info(ctx, infoOptions(name, opts, "organization-id"))
}
