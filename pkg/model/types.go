package model

// RunConfig is the top-level run-configuration record: one pipeline execution
// request covering one or more samples.
type RunConfig struct {
	FCDate string `yaml:"fc_date,omitempty"`
	FCName string `yaml:"fc_name,omitempty"`

	Upload    Upload        `yaml:"upload"`
	Resources Resources     `yaml:"resources,omitempty"`
	Details   []SampleEntry `yaml:"details"`

	// RunID is stamped during normalization and never serialized; the document
	// on disk stays identity-free.
	RunID string `yaml:"-"`
}

// Upload describes where finished pipeline outputs land.
type Upload struct {
	Dir    string `yaml:"dir"`
	Method string `yaml:"method,omitempty"`
}

// Resources maps a program or pseudo-program name (e.g. "tmp") to its
// resource overrides.
type Resources map[string]Resource

// Resource holds per-program resource overrides.
type Resource struct {
	Dir    string `yaml:"dir,omitempty"`
	Memory string `yaml:"memory,omitempty"`
	Cores  int    `yaml:"cores,omitempty"`
}

// TmpDir returns the scratch directory configured under resources.tmp.dir, or
// empty when none is set.
func (r Resources) TmpDir() string {
	return r["tmp"].Dir
}

// SampleEntry describes one sample's processing parameters: one element of
// the details sequence.
type SampleEntry struct {
	Analysis    string    `yaml:"analysis"`
	Algorithm   Algorithm `yaml:"algorithm"`
	Description string    `yaml:"description,omitempty"`
	Metadata    Metadata  `yaml:"metadata,omitempty"`
	GenomeBuild string    `yaml:"genome_build,omitempty"`
	Files       []string  `yaml:"files"`
	Lane        int       `yaml:"lane,omitempty"`
}

// Metadata groups samples for joint processing. Batch associates entries into
// a comparison batch; any further keys are carried through untouched.
type Metadata struct {
	Batch     string            `yaml:"batch,omitempty"`
	Sex       string            `yaml:"sex,omitempty"`
	Phenotype string            `yaml:"phenotype,omitempty"`
	Extra     map[string]string `yaml:",inline"`
}

// Batches groups the configured samples by metadata.batch. Entries without a
// batch stand alone under their description, or their analysis tag when the
// description is empty too.
func (c RunConfig) Batches() map[string][]SampleEntry {
	out := make(map[string][]SampleEntry)
	for _, entry := range c.Details {
		key := entry.Metadata.Batch
		if key == "" {
			key = entry.Description
		}
		if key == "" {
			key = entry.Analysis
		}
		out[key] = append(out[key], entry)
	}
	return out
}
