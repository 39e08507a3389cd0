package cli

// Structs mirroring hammer's --output json rendering: human-readable keys,
// counts as strings.

type Org struct {
	ID    int    `json:"Id"`
	Name  string `json:"Name"`
	Label string `json:"Label"`
}

type Product struct {
	ID           int    `json:"Id"`
	Name         string `json:"Name"`
	Label        string `json:"Label"`
	Repositories []Ref  `json:"Content"`
	Organization string `json:"Organization"`
}

// Ref is the short {Id, Name} form hammer nests in info output.
type Ref struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}

type Repository struct {
	ID                      int    `json:"Id"`
	Name                    string `json:"Name"`
	Label                   string `json:"Label"`
	ContentType             string `json:"Content Type"`
	URL                     string `json:"Url"`
	UpstreamRepositoryName  string `json:"Upstream Repository Name"`
	ContainerRepositoryName string `json:"Container Repository Name"`
	Product                 Ref    `json:"Product"`
	Sync                    struct {
		Status string `json:"Status"`
	} `json:"Sync"`
	ContentCounts struct {
		Packages                string `json:"Packages"`
		Errata                  string `json:"Errata"`
		ContainerImageManifests string `json:"Container Image Manifests"`
		ContainerImageTags      string `json:"Container Image Tags"`
	} `json:"Content Counts"`
}

type ContentView struct {
	ID                    int    `json:"Id"`
	Name                  string `json:"Name"`
	Label                 string `json:"Label"`
	Composite             bool   `json:"Composite"`
	Repositories          []Ref  `json:"Yum Repositories"`
	ContainerRepositories []Ref  `json:"Container Image Repositories"`
	Components            []Ref  `json:"Components"`
	Versions              []struct {
		ID      int    `json:"Id"`
		Version string `json:"Version"`
	} `json:"Versions"`
	LifecycleEnvironments []Ref `json:"Lifecycle Environments"`
}

type ContentViewVersion struct {
	ID                    int    `json:"Id"`
	Version               string `json:"Version"`
	ContentView           Ref    `json:"Content View"`
	LifecycleEnvironments []Ref  `json:"Lifecycle Environments"`
}

type LifecycleEnvironment struct {
	ID                  int    `json:"Id"`
	Name                string `json:"Name"`
	Label               string `json:"Label"`
	Prior               string `json:"Prior Lifecycle Environment"`
	RegistryNamePattern string `json:"Registry Name Pattern"`
	Organization        string `json:"Organization"`
}

type ActivationKey struct {
	ID                   int    `json:"Id"`
	Name                 string `json:"Name"`
	LifecycleEnvironment string `json:"Lifecycle Environment"`
	ContentView          string `json:"Content View"`
	HostLimit            string `json:"Host Limit"`
}
