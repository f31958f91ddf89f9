package model

// Documented fallbacks for optional algorithm options. Required document keys
// (analysis, algorithm, files) never default.
const (
	DefaultPlatform         = "illumina"
	DefaultQualityFormat    = "standard"
	DefaultCoverageInterval = "genome"
	DefaultPloidy           = 2
	// DefaultMinAlleleFraction is a percentage.
	DefaultMinAlleleFraction = 10
)

// ApplyDefaults fills optional options that are absent with their documented
// fallbacks. Explicit values, including explicit false, are left alone.
func (a *Algorithm) ApplyDefaults() {
	if a.Platform == "" {
		a.Platform = DefaultPlatform
	}
	if a.QualityFormat == "" {
		a.QualityFormat = DefaultQualityFormat
	}
	if a.CoverageInterval == "" {
		a.CoverageInterval = DefaultCoverageInterval
	}
	if a.MarkDuplicates == nil {
		a.MarkDuplicates = Bool(true)
	}
	if a.Recalibrate == nil {
		a.Recalibrate = Bool(false)
	}
	if a.Realign == nil {
		a.Realign = Bool(false)
	}
	if a.Ploidy == nil {
		a.Ploidy = Int(DefaultPloidy)
	}
	if a.MinAlleleFraction == nil {
		a.MinAlleleFraction = Int(DefaultMinAlleleFraction)
	}
	// Phasing and Background default to disabled (empty) rather than erroring
	// when absent or null.
}
