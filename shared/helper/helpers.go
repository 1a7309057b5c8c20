package helper

// GetTypedValueOf2 asserts the result of a comma-ok getter to the expected type T.
// ok is false when the getter misses or the value has another type.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}
