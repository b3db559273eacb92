package deps

import (
	"sort"
	"strings"

	"github.com/Sumatoshi-tech/depusage/pkg/importmodel"
)

// Result partitions a dependency table into used and unused names.
// Every table entry lands in exactly one of Used or Unused.
type Result struct {
	Used   []string `json:"used"   yaml:"used"`
	Unused []string `json:"unused" yaml:"unused"`

	// Matches maps each used dependency to the sorted imports that matched it.
	Matches map[string][]string `json:"matches" yaml:"matches"`
}

// Classify marks a dependency as used when any import contains any of its
// patterns as a case-sensitive substring.
func Classify(table []Dependency, imports importmodel.Set) Result {
	result := Result{
		Used:    []string{},
		Unused:  []string{},
		Matches: make(map[string][]string),
	}

	sorted := imports.Sorted()

	for _, dep := range table {
		matched := matchingImports(dep, sorted)
		if len(matched) == 0 {
			result.Unused = append(result.Unused, dep.Name)

			continue
		}

		result.Used = append(result.Used, dep.Name)
		result.Matches[dep.Name] = matched
	}

	sort.Strings(result.Used)
	sort.Strings(result.Unused)

	return result
}

func matchingImports(dep Dependency, sortedImports []string) []string {
	var matched []string

	for _, imp := range sortedImports {
		if matchesAny(imp, dep.Patterns) {
			matched = append(matched, imp)
		}
	}

	return matched
}

func matchesAny(imp string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(imp, pattern) {
			return true
		}
	}

	return false
}
