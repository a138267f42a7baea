package pointer

// PtrWithZeroAsNil returns pointer to value v.
// But if v has zero value then PtrWithZeroAsNil returns nil,
// so optional JSON fields are omitted instead of being rendered empty.
func PtrWithZeroAsNil[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
