// Package hostlist combines already-resolved host lists the way the
// dispatcher does, honoring a task's ordering annotations. It never resolves
// role names — callers pass the host lists their role definitions produced.
package hostlist

import "sort"

// Options mirror the task metadata ordering flags.
type Options struct {
	// EnsureOrder keeps hosts in first-occurrence order across the combined
	// lists instead of deduplicating through an unordered set.
	EnsureOrder bool

	// Sorted sorts the deduped list. Ignored unless EnsureOrder is set.
	Sorted bool
}

// Merge concatenates lists and deduplicates them.
//
// Without EnsureOrder the result order is unspecified, matching set-style
// deduplication: callers that care about order must ask for it. With
// EnsureOrder the first occurrence of each host keeps its position in the
// combined input; with Sorted on top, the deduped list is sorted
// lexicographically.
func Merge(opts Options, lists ...[]string) []string {
	if opts.EnsureOrder {
		return mergeOrdered(opts.Sorted, lists)
	}
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, h := range list {
			set[h] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for h := range set {
		out = append(out, h)
	}
	return out
}

func mergeOrdered(sorted bool, lists [][]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, h := range list {
			if _, dup := seen[h]; dup {
				continue
			}
			seen[h] = struct{}{}
			out = append(out, h)
		}
	}
	if sorted {
		sort.Strings(out)
	}
	return out
}
