// Package runconfig loads sampling run definitions from YAML files and maps
// them onto sampling plans.
package runconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carson-networks/audit-sampler/internal/ledger"
	"github.com/carson-networks/audit-sampler/internal/sampling"
)

// RunConfig is a fully mapped and validated run definition.
type RunConfig struct {
	Name    string
	Columns ledger.Columns
	Plans   []sampling.Plan
}

// Load reads and maps a run definition from disk.
func Load(path string) (*RunConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var dto YAMLRunConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return MapRunConfig(&dto)
}
