package stdx

// Must0 panics if the provided error is not nil. It is intended for
// situations where an error is not expected and should terminate the
// program if it occurs.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes a value of any type and an error. If the error is not nil,
// it panics with the error. Otherwise, it returns the value.
//
// This is useful for simplifying error handling in cases where you are
// confident that an error will not occur, or where you want to handle
// errors by panicking.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
