// Package factory builds platform entities with generated names for test
// fixtures. Factories create and return; nothing is torn down, matching
// the suites' disposable-organization model.
package factory

import (
	"context"

	"github.com/google/uuid"

	"github.com/lvrtelov/robottelo/internal/api"
)

type Factory struct {
	client *api.Client
}

func New(client *api.Client) *Factory {
	return &Factory{client: client}
}

// Name returns a unique entity name.
func Name() string {
	return uuid.NewString()
}

// Organization creates a fresh organization, optionally bound to capsules.
func (f *Factory) Organization(ctx context.Context, capsuleIDs ...int) (*api.Organization, error) {
	return f.client.Organizations.Create(ctx, api.OrganizationCreate{
		Name:          Name(),
		SmartProxyIDs: capsuleIDs,
	})
}

func (f *Factory) Product(ctx context.Context, orgID int) (*api.Product, error) {
	return f.client.Products.Create(ctx, api.ProductCreate{
		Name:           Name(),
		OrganizationID: orgID,
	})
}

// YumRepositoryOptions tunes the created repository; zero values mean the
// server defaults (immediate download, no mirroring).
type YumRepositoryOptions struct {
	URL            string
	DownloadPolicy string
	MirrorOnSync   *bool
}

func (f *Factory) YumRepository(ctx context.Context, productID int, opts YumRepositoryOptions) (*api.Repository, error) {
	unprotected := true
	return f.client.Repositories.Create(ctx, api.RepositoryCreate{
		Name:           Name(),
		ProductID:      productID,
		ContentType:    api.ContentTypeYum,
		URL:            opts.URL,
		DownloadPolicy: opts.DownloadPolicy,
		MirrorOnSync:   opts.MirrorOnSync,
		Unprotected:    &unprotected,
	})
}

// DockerRepository creates a container repository tracking upstreamName in
// an external registry.
func (f *Factory) DockerRepository(ctx context.Context, productID int, registryURL, upstreamName string) (*api.Repository, error) {
	return f.client.Repositories.Create(ctx, api.RepositoryCreate{
		Name:               Name(),
		ProductID:          productID,
		ContentType:        api.ContentTypeDocker,
		URL:                registryURL,
		DockerUpstreamName: upstreamName,
	})
}

func (f *Factory) ContentView(ctx context.Context, orgID int) (*api.ContentView, error) {
	return f.client.ContentViews.Create(ctx, api.ContentViewCreate{
		Name:           Name(),
		OrganizationID: orgID,
	})
}

// CompositeContentView creates a composite view over component version ids.
func (f *Factory) CompositeContentView(ctx context.Context, orgID int, componentIDs ...int) (*api.ContentView, error) {
	return f.client.ContentViews.Create(ctx, api.ContentViewCreate{
		Name:           Name(),
		OrganizationID: orgID,
		Composite:      true,
		ComponentIDs:   componentIDs,
	})
}

// LifecycleEnvironment creates an environment chained after priorID; zero
// priorID chains after Library.
func (f *Factory) LifecycleEnvironment(ctx context.Context, orgID, priorID int) (*api.LifecycleEnvironment, error) {
	if priorID == 0 {
		library, err := f.LibraryEnvironment(ctx, orgID)
		if err != nil {
			return nil, err
		}
		priorID = library.ID
	}
	return f.client.LifecycleEnvironments.Create(ctx, api.LifecycleEnvironmentCreate{
		Name:           Name(),
		OrganizationID: orgID,
		PriorID:        priorID,
	})
}

// LibraryEnvironment fetches the organization's built-in Library.
func (f *Factory) LibraryEnvironment(ctx context.Context, orgID int) (*api.LifecycleEnvironment, error) {
	envs, err := f.client.LifecycleEnvironments.List(ctx, orgID, `name="Library"`)
	if err != nil {
		return nil, err
	}
	if len(envs) == 0 {
		return nil, &api.APIError{StatusCode: 404, Message: "Library environment not found"}
	}
	return &envs[0], nil
}

func (f *Factory) ActivationKey(ctx context.Context, orgID, contentViewID, envID int) (*api.ActivationKey, error) {
	return f.client.ActivationKeys.Create(ctx, api.ActivationKeyCreate{
		Name:           Name(),
		OrganizationID: orgID,
		ContentViewID:  contentViewID,
		EnvironmentID:  envID,
	})
}

// SyncedYumRepository is the common fixture: product + repo + first sync.
func (f *Factory) SyncedYumRepository(ctx context.Context, orgID int, opts YumRepositoryOptions) (*api.Repository, error) {
	product, err := f.Product(ctx, orgID)
	if err != nil {
		return nil, err
	}
	repo, err := f.YumRepository(ctx, product.ID, opts)
	if err != nil {
		return nil, err
	}
	if _, err := f.client.Repositories.Sync(ctx, repo.ID); err != nil {
		return nil, err
	}
	return f.client.Repositories.Get(ctx, repo.ID)
}
