package validation

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type optionKind int

const (
	kindString optionKind = iota
	kindBool
	kindNonNegInt
	kindStringList
	kindStringMap
)

// algorithmOptions types the known algorithm keys. Keys not listed here are
// forward-compatible extensions and pass untouched.
var algorithmOptions = map[string]optionKind{
	"aligner":             kindString,
	"platform":            kindString,
	"quality_format":      kindString,
	"trim_reads":          kindString,
	"adapters":            kindStringList,
	"align_split_size":    kindNonNegInt,
	"bam_clean":           kindString,
	"disambiguate":        kindStringList,
	"mark_duplicates":     kindBool,
	"recalibrate":         kindBool,
	"realign":             kindBool,
	"coverage_interval":   kindString,
	"coverage_depth_max":  kindNonNegInt,
	"variantcaller":       kindString,
	"jointcaller":         kindString,
	"indelcaller":         kindString,
	"ploidy":              kindNonNegInt,
	"min_allele_fraction": kindNonNegInt,
	"phasing":             kindString,
	"background":          kindString,
	"effects":             kindString,
	"svcaller":            kindStringList,
	"sv_regions":          kindString,
	"svvalidate":          kindStringMap,
	"variant_regions":     kindString,
	"validate":            kindString,
	"validate_regions":    kindString,
	"exclude_regions":     kindString,
	"tools_on":            kindStringList,
	"tools_off":           kindStringList,
	"mixup_check":         kindBool,
	"remove_lcr":          kindBool,
	"umi_type":            kindString,
}

// Validate runs the structural pass over a raw document. It reports every
// issue it finds rather than stopping at the first, so linting surfaces the
// full picture in one run.
func Validate(raw []byte) Result {
	result := Result{Valid: true}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		result.add("", 0, fmt.Sprintf("invalid YAML: %v", err))
		return result
	}

	root := documentRoot(&doc)
	if root == nil {
		result.add("", 0, "document is empty")
		return result
	}
	if root.Kind != yaml.MappingNode {
		result.add("", root.Line, "document root must be a mapping")
		return result
	}

	top := mappingEntries(root)
	for _, key := range []string{"upload", "resources", "details"} {
		if _, ok := top[key]; !ok {
			result.add(key, root.Line, "required key is missing")
		}
	}

	if upload, ok := top["upload"]; ok {
		checkUpload(&result, upload)
	}
	if resources, ok := top["resources"]; ok {
		checkResources(&result, resources)
	}
	if details, ok := top["details"]; ok {
		checkDetails(&result, details)
	}

	return result
}

func checkUpload(result *Result, node *yaml.Node) {
	if node.Kind != yaml.MappingNode {
		result.add("upload", node.Line, "must be a mapping")
		return
	}
	entries := mappingEntries(node)
	dir, ok := entries["dir"]
	if !ok {
		result.add("upload.dir", node.Line, "required key is missing")
		return
	}
	if !isStringScalar(dir) {
		result.add("upload.dir", dir.Line, "must be a string path")
	}
}

func checkResources(result *Result, node *yaml.Node) {
	if node.Kind != yaml.MappingNode {
		result.add("resources", node.Line, "must be a mapping")
		return
	}
	for name, value := range mappingEntries(node) {
		path := "resources." + name
		if value.Kind != yaml.MappingNode {
			result.add(path, value.Line, "must be a mapping")
			continue
		}
		if dir, ok := mappingEntries(value)["dir"]; ok && !isStringScalar(dir) {
			result.add(path+".dir", dir.Line, "must be a string path")
		}
	}
}

func checkDetails(result *Result, node *yaml.Node) {
	if node.Kind != yaml.SequenceNode {
		result.add("details", node.Line, "must be a sequence of sample entries")
		return
	}
	for i, entry := range node.Content {
		checkEntry(result, entry, fmt.Sprintf("details[%d]", i))
	}
}

func checkEntry(result *Result, node *yaml.Node, path string) {
	if node.Kind != yaml.MappingNode {
		result.add(path, node.Line, "sample entry must be a mapping")
		return
	}

	entries := mappingEntries(node)
	for _, key := range []string{"analysis", "algorithm", "files"} {
		if _, ok := entries[key]; !ok {
			result.add(path+"."+key, node.Line, "required key is missing")
		}
	}

	if analysis, ok := entries["analysis"]; ok && !isStringScalar(analysis) {
		result.add(path+".analysis", analysis.Line, "must be a string")
	}
	if alg, ok := entries["algorithm"]; ok {
		checkAlgorithm(result, alg, path+".algorithm")
	}
	if files, ok := entries["files"]; ok {
		checkStringList(result, files, path+".files")
	}
	if lane, ok := entries["lane"]; ok && !isNull(lane) {
		checkNonNegInt(result, lane, path+".lane")
	}
	if desc, ok := entries["description"]; ok && !isNull(desc) && !isStringScalar(desc) {
		result.add(path+".description", desc.Line, "must be a string")
	}
	if build, ok := entries["genome_build"]; ok && !isNull(build) && !isStringScalar(build) {
		result.add(path+".genome_build", build.Line, "must be a string")
	}
	if meta, ok := entries["metadata"]; ok {
		checkMetadata(result, meta, path+".metadata")
	}
}

func checkAlgorithm(result *Result, node *yaml.Node, path string) {
	if node.Kind != yaml.MappingNode {
		result.add(path, node.Line, "must be a mapping")
		return
	}
	for key, value := range mappingEntries(node) {
		kind, known := algorithmOptions[key]
		if !known {
			continue
		}
		// Optional options may be null; null counts as absent, not mistyped.
		if isNull(value) {
			continue
		}
		optPath := path + "." + key
		switch kind {
		case kindString:
			if !isStringScalar(value) {
				result.add(optPath, value.Line, "must be a string")
			}
		case kindBool:
			if !isBoolScalar(value) {
				result.add(optPath, value.Line, "must be true or false")
			}
		case kindNonNegInt:
			checkNonNegInt(result, value, optPath)
		case kindStringList:
			checkStringList(result, value, optPath)
		case kindStringMap:
			checkStringMap(result, value, optPath)
		}
	}
}

func checkMetadata(result *Result, node *yaml.Node, path string) {
	if isNull(node) {
		return
	}
	if node.Kind != yaml.MappingNode {
		result.add(path, node.Line, "must be a mapping")
		return
	}
	for key, value := range mappingEntries(node) {
		if !isNull(value) && !isStringScalar(value) {
			result.add(path+"."+key, value.Line, "must be a string")
		}
	}
}

func checkStringList(result *Result, node *yaml.Node, path string) {
	if node.Kind != yaml.SequenceNode {
		result.add(path, node.Line, "must be a sequence of strings")
		return
	}
	for i, item := range node.Content {
		if !isStringScalar(item) {
			result.add(fmt.Sprintf("%s[%d]", path, i), item.Line, "must be a string")
		}
	}
}

func checkStringMap(result *Result, node *yaml.Node, path string) {
	if node.Kind != yaml.MappingNode {
		result.add(path, node.Line, "must be a mapping of strings")
		return
	}
	for key, value := range mappingEntries(node) {
		if !isStringScalar(value) {
			result.add(path+"."+key, value.Line, "must be a string")
		}
	}
}

func checkNonNegInt(result *Result, node *yaml.Node, path string) {
	if node.Kind != yaml.ScalarNode || node.Tag != "!!int" {
		result.add(path, node.Line, "must be an integer")
		return
	}
	if strings.HasPrefix(strings.TrimSpace(node.Value), "-") {
		result.add(path, node.Line, "must be non-negative")
	}
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		return doc.Content[0]
	}
	if doc.Kind == 0 {
		return nil
	}
	return doc
}

// mappingEntries flattens a mapping node's alternating key/value content.
func mappingEntries(node *yaml.Node) map[string]*yaml.Node {
	out := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Kind != yaml.ScalarNode {
			continue
		}
		out[key.Value] = node.Content[i+1]
	}
	return out
}

func isStringScalar(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && (node.Tag == "!!str" || node.Tag == "")
}

func isBoolScalar(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!bool"
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}
