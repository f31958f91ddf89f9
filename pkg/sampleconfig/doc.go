// Package sampleconfig defines the public contracts for loading and parsing
// run-configuration documents: the YAML files that describe which samples a
// variant-calling pipeline should process and with which algorithm options.
//
// Implementations of the Loader and Parser interfaces live under
// internal/sampleconfig; this package stays dependency-free so callers can
// swap implementations without dragging in YAML or HTTP machinery.
package sampleconfig
