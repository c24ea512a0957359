package util

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value pointed to by p, or the zero value if p is nil.
func Deref[T any](p *T) T {
	var zero T
	return DerefOr(p, zero)
}

// DerefOr returns the value pointed to by p, or def if p is nil. Optional
// record fields use it to resolve their documented defaults.
func DerefOr[T any](p *T, def T) T {
	if p != nil {
		return *p
	}
	return def
}
