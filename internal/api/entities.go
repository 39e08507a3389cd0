package api

// Entity mirrors of the platform's JSON resources. Only the fields the
// harness reads or asserts on are mapped.

type Organization struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

type Product struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Label          string `json:"label"`
	OrganizationID int    `json:"organization_id"`
}

// ContentCounts reports per-unit-type totals for a synced repository.
type ContentCounts struct {
	Packages        int `json:"package"`
	RPMs            int `json:"rpm"`
	Errata          int `json:"erratum"`
	PackageGroups   int `json:"package_group"`
	DockerManifests int `json:"docker_manifest"`
	DockerTags      int `json:"docker_tag"`
}

type Repository struct {
	ID                      int           `json:"id"`
	Name                    string        `json:"name"`
	Label                   string        `json:"label"`
	ContentType             string        `json:"content_type"`
	URL                     string        `json:"url"`
	DownloadPolicy          string        `json:"download_policy"`
	MirrorOnSync            bool          `json:"mirror_on_sync"`
	DockerUpstreamName      string        `json:"docker_upstream_name"`
	ContainerRepositoryName string        `json:"container_repository_name"`
	ContentCounts           ContentCounts `json:"content_counts"`
	Product                 struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"product"`
}

type ContentView struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Label          string `json:"label"`
	Composite      bool   `json:"composite"`
	OrganizationID int    `json:"organization_id"`
	RepositoryIDs  []int  `json:"repository_ids"`
	ComponentIDs   []int  `json:"component_ids"`
	Versions       []struct {
		ID      int    `json:"id"`
		Version string `json:"version"`
	} `json:"versions"`
	NextVersion string `json:"next_version"`
}

type ContentViewVersion struct {
	ID            int    `json:"id"`
	Version       string `json:"version"`
	Major         int    `json:"major"`
	Minor         int    `json:"minor"`
	ContentViewID int    `json:"content_view_id"`
	PackageCount  int    `json:"package_count"`
	ErrataCounts  *struct {
		Total    int `json:"total"`
		Security int `json:"security"`
	} `json:"errata_counts"`
	Environments []LifecycleEnvironment `json:"environments"`
}

type LifecycleEnvironment struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Label               string `json:"label"`
	OrganizationID      int    `json:"organization_id"`
	RegistryNamePattern string `json:"registry_name_pattern"`
	Prior               *struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"prior"`
}

type Capsule struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Features []struct {
		Name string `json:"name"`
	} `json:"features"`
}

// CapsuleSyncStatus is the capsule content synchronization report.
type CapsuleSyncStatus struct {
	ActiveSyncTasks []Task `json:"active_sync_tasks"`
	LastSyncTime    string `json:"last_sync_time"`
}

type ActivationKey struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ContentViewID int    `json:"content_view_id"`
	EnvironmentID int    `json:"environment_id"`
	ContentView   *struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"content_view"`
	Environment *struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"environment"`
}

type Subscription struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ProductID int    `json:"product_id"`
}

type Erratum struct {
	ID       int    `json:"id"`
	ErrataID string `json:"errata_id"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
}

type Host struct {
	ID                     int    `json:"id"`
	Name                   string `json:"name"`
	ContentFacetAttributes *struct {
		ContentViewID          int `json:"content_view_id"`
		LifecycleEnvironmentID int `json:"lifecycle_environment_id"`
	} `json:"content_facet_attributes"`
}
