package reporting

import "github.com/kbukum/edukit/util"

// FindCommonElements returns the elements of a that also occur in b. The
// order and repeats of a are kept. The result is never nil.
func FindCommonElements[T comparable](a, b []T) []T {
	return util.Filter(a, func(x T) bool { return util.Contains(b, x) })
}
