package model

// Algorithm holds the per-sample pipeline options: alignment, variant
// calling, and quality-control behaviour. Scalar options use pointers where
// absence and the zero value mean different things (a missing
// mark_duplicates falls back to the default; an explicit false disables the
// step).
//
// The option set is extensible: several keys only apply to specific tools, and
// new tools add new keys. Anything not modelled below lands in Extra and
// survives re-serialization untouched.
type Algorithm struct {
	// Alignment.
	Aligner        string   `yaml:"aligner,omitempty"`
	Platform       string   `yaml:"platform,omitempty"`
	QualityFormat  string   `yaml:"quality_format,omitempty"`
	TrimReads      string   `yaml:"trim_reads,omitempty"`
	Adapters       []string `yaml:"adapters,omitempty"`
	AlignSplitSize *int     `yaml:"align_split_size,omitempty"`
	BAMClean       string   `yaml:"bam_clean,omitempty"`
	Disambiguate   []string `yaml:"disambiguate,omitempty"`

	// Post-alignment processing.
	MarkDuplicates *bool `yaml:"mark_duplicates,omitempty"`
	Recalibrate    *bool `yaml:"recalibrate,omitempty"`
	Realign        *bool `yaml:"realign,omitempty"`

	// Coverage and depth.
	CoverageInterval string `yaml:"coverage_interval,omitempty"`
	CoverageDepthMax *int   `yaml:"coverage_depth_max,omitempty"`

	// Small-variant calling.
	VariantCaller     string `yaml:"variantcaller,omitempty"`
	JointCaller       string `yaml:"jointcaller,omitempty"`
	IndelCaller       string `yaml:"indelcaller,omitempty"`
	Ploidy            *int   `yaml:"ploidy,omitempty"`
	MinAlleleFraction *int   `yaml:"min_allele_fraction,omitempty"`
	// Phasing only takes effect with callers that emit phased genotypes
	// (GATK-based pipelines).
	Phasing    string `yaml:"phasing,omitempty"`
	Background string `yaml:"background,omitempty"`
	Effects    string `yaml:"effects,omitempty"`

	// Structural-variant calling.
	SVCaller   []string          `yaml:"svcaller,omitempty"`
	SVRegions  string            `yaml:"sv_regions,omitempty"`
	SVValidate map[string]string `yaml:"svvalidate,omitempty"`

	// Regions and validation inputs.
	VariantRegions  string `yaml:"variant_regions,omitempty"`
	Validate        string `yaml:"validate,omitempty"`
	ValidateRegions string `yaml:"validate_regions,omitempty"`
	ExcludeRegions  string `yaml:"exclude_regions,omitempty"`

	// Tool toggles and QC.
	ToolsOn    []string `yaml:"tools_on,omitempty"`
	ToolsOff   []string `yaml:"tools_off,omitempty"`
	MixupCheck *bool    `yaml:"mixup_check,omitempty"`
	RemoveLCR  *bool    `yaml:"remove_lcr,omitempty"`
	UMIType    string   `yaml:"umi_type,omitempty"`

	// Extra captures unrecognised option keys so forward-compatible documents
	// round-trip without loss.
	Extra map[string]any `yaml:",inline"`
}

// Bool builds a *bool literal for option construction.
func Bool(v bool) *bool { return &v }

// Int builds a *int literal for option construction.
func Int(v int) *int { return &v }
