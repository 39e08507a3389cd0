package e2e

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Fixtures points the suites at upstream fixture content: small yum repos
// with known packages and errata, and a public container image.
type Fixtures struct {
	Yum struct {
		Zoo         string `yaml:"zoo"`
		ZooModified string `yaml:"zoo-modified"`
		Small       string `yaml:"small"`
		Errata      string `yaml:"errata"`
	} `yaml:"yum"`
	RPMs struct {
		Bear      string `yaml:"bear"`
		WalrusOld string `yaml:"walrus-0.71"`
		WalrusNew string `yaml:"walrus-5.21"`
		Hoolock   string `yaml:"hoolock"`
	} `yaml:"rpms"`
	Docker struct {
		UpstreamName string `yaml:"upstream-name"`
	} `yaml:"docker"`
	Errata struct {
		Security string `yaml:"security"`
	} `yaml:"errata"`
}

func loadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read fixtures")
	}
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode fixtures")
	}
	return &f, nil
}
