package sampling

import "fmt"

// ConfigurationError reports an invalid spec. It is returned before any
// computation starts; nothing is retried since the input is deterministic.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// DataUnavailableError reports that a required field is missing from the
// input records. Filtering must not proceed silently without it.
type DataUnavailableError struct {
	Column string
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("required column unavailable: %s", e.Column)
}

// EmptyPopulationError reports that a sub-population filter matched no
// records. Stratification and sampling are skipped for that sub-population.
type EmptyPopulationError struct {
	SubPopulation string
}

func (e *EmptyPopulationError) Error() string {
	return fmt.Sprintf("sub-population %q is empty", e.SubPopulation)
}
