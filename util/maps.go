package util

import "maps"

// MergeDictionaries returns a new map holding every entry of first and
// second. Keys present in both take their value from second. Neither input
// is modified.
func MergeDictionaries[K comparable, V any](first, second map[K]V) map[K]V {
	merged := make(map[K]V, len(first)+len(second))
	maps.Copy(merged, first)
	maps.Copy(merged, second)
	return merged
}
