package cli

import (
	"context"
	"strconv"
)

// Command groups mirror hammer's subcommand tree. Info lookups accept the
// same identifying options hammer does (id, or name plus scoping ids).

type OrgCommands struct {
	h *Hammer
}

func (c *OrgCommands) Create(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"organization", "create"}, opts)
	return err
}

func (c *OrgCommands) Info(ctx context.Context, opts Options) (*Org, error) {
	var org Org
	if err := c.h.RunJSON(ctx, &org, []string{"organization", "info"}, opts); err != nil {
		return nil, err
	}
	return &org, nil
}

func (c *OrgCommands) Delete(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"organization", "delete"}, opts)
	return err
}

type ProductCommands struct {
	h *Hammer
}

func (c *ProductCommands) Create(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"product", "create"}, opts)
	return err
}

func (c *ProductCommands) Info(ctx context.Context, opts Options) (*Product, error) {
	var prod Product
	if err := c.h.RunJSON(ctx, &prod, []string{"product", "info"}, opts); err != nil {
		return nil, err
	}
	return &prod, nil
}

func (c *ProductCommands) Update(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"product", "update"}, opts)
	return err
}

func (c *ProductCommands) Delete(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"product", "delete"}, opts)
	return err
}

type RepositoryCommands struct {
	h *Hammer
}

func (c *RepositoryCommands) Create(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"repository", "create"}, opts)
	return err
}

func (c *RepositoryCommands) Info(ctx context.Context, opts Options) (*Repository, error) {
	var repo Repository
	if err := c.h.RunJSON(ctx, &repo, []string{"repository", "info"}, opts); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (c *RepositoryCommands) List(ctx context.Context, opts Options) ([]Repository, error) {
	var repos []Repository
	if err := c.h.RunJSON(ctx, &repos, []string{"repository", "list"}, opts); err != nil {
		return nil, err
	}
	return repos, nil
}

func (c *RepositoryCommands) Update(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"repository", "update"}, opts)
	return err
}

func (c *RepositoryCommands) Delete(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"repository", "delete"}, opts)
	return err
}

// Synchronize blocks until the server-side sync task finishes; hammer
// itself waits unless told otherwise.
func (c *RepositoryCommands) Synchronize(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"repository", "synchronize"}, opts)
	return err
}

type ContentViewCommands struct {
	h *Hammer
}

func (c *ContentViewCommands) Create(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"content-view", "create"}, opts)
	return err
}

func (c *ContentViewCommands) Info(ctx context.Context, opts Options) (*ContentView, error) {
	var cv ContentView
	if err := c.h.RunJSON(ctx, &cv, []string{"content-view", "info"}, opts); err != nil {
		return nil, err
	}
	return &cv, nil
}

func (c *ContentViewCommands) Update(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"content-view", "update"}, opts)
	return err
}

func (c *ContentViewCommands) AddRepository(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"content-view", "add-repository"}, opts)
	return err
}

func (c *ContentViewCommands) Publish(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"content-view", "publish"}, opts)
	return err
}

func (c *ContentViewCommands) Remove(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"content-view", "remove"}, opts)
	return err
}

func (c *ContentViewCommands) Delete(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"content-view", "delete"}, opts)
	return err
}

func (c *ContentViewCommands) VersionInfo(ctx context.Context, opts Options) (*ContentViewVersion, error) {
	var cvv ContentViewVersion
	if err := c.h.RunJSON(ctx, &cvv, []string{"content-view", "version", "info"}, opts); err != nil {
		return nil, err
	}
	return &cvv, nil
}

func (c *ContentViewCommands) VersionList(ctx context.Context, opts Options) ([]ContentViewVersion, error) {
	var versions []ContentViewVersion
	if err := c.h.RunJSON(ctx, &versions, []string{"content-view", "version", "list"}, opts); err != nil {
		return nil, err
	}
	return versions, nil
}

func (c *ContentViewCommands) VersionPromote(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"content-view", "version", "promote"}, opts)
	return err
}

func (c *ContentViewCommands) VersionIncrementalUpdate(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"content-view", "version", "incremental-update"}, opts)
	return err
}

type LifecycleEnvironmentCommands struct {
	h *Hammer
}

func (c *LifecycleEnvironmentCommands) Create(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"lifecycle-environment", "create"}, opts)
	return err
}

func (c *LifecycleEnvironmentCommands) Info(ctx context.Context, opts Options) (*LifecycleEnvironment, error) {
	var env LifecycleEnvironment
	if err := c.h.RunJSON(ctx, &env, []string{"lifecycle-environment", "info"}, opts); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *LifecycleEnvironmentCommands) Update(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"lifecycle-environment", "update"}, opts)
	return err
}

type ActivationKeyCommands struct {
	h *Hammer
}

func (c *ActivationKeyCommands) Create(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"activation-key", "create"}, opts)
	return err
}

func (c *ActivationKeyCommands) Info(ctx context.Context, opts Options) (*ActivationKey, error) {
	var key ActivationKey
	if err := c.h.RunJSON(ctx, &key, []string{"activation-key", "info"}, opts); err != nil {
		return nil, err
	}
	return &key, nil
}

func (c *ActivationKeyCommands) Update(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"activation-key", "update"}, opts)
	return err
}

func (c *ActivationKeyCommands) AddSubscription(ctx context.Context, opts Options) error {
	_, err := c.h.Run(ctx, []string{"activation-key", "add-subscription"}, opts)
	return err
}

type DefaultsCommands struct {
	h *Hammer
}

// Add sets a hammer session default, e.g. the docker provider for
// repository commands.
func (c *DefaultsCommands) Add(ctx context.Context, param, value string) error {
	_, err := c.h.Run(ctx, []string{"defaults", "add"},
		Options{"param-name": param, "param-value": value})
	return err
}

func (c *DefaultsCommands) Delete(ctx context.Context, param string) error {
	_, err := c.h.Run(ctx, []string{"defaults", "delete"}, Options{"param-name": param})
	return err
}

// IDOption formats an integer id for an Options value.
func IDOption(id int) string {
	return strconv.Itoa(id)
}
