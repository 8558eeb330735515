package pipe

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}

// Pipe applies fns to value from left to right. With no functions it
// returns value unchanged.
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Pipe1 returns f1(value).
func Pipe1[T0, T1 any](value T0, f1 func(T0) T1) T1 {
	return f1(value)
}

// Pipe2 returns f2(f1(value)).
func Pipe2[T0, T1, T2 any](value T0, f1 func(T0) T1, f2 func(T1) T2) T2 {
	return f2(f1(value))
}

// Pipe3 returns f3(f2(f1(value))).
func Pipe3[T0, T1, T2, T3 any](value T0, f1 func(T0) T1, f2 func(T1) T2, f3 func(T2) T3) T3 {
	return f3(f2(f1(value)))
}

// Pipe4 returns f4(f3(f2(f1(value)))).
func Pipe4[T0, T1, T2, T3, T4 any](value T0, f1 func(T0) T1, f2 func(T1) T2, f3 func(T2) T3, f4 func(T3) T4) T4 {
	return f4(f3(f2(f1(value))))
}

// Apply is the untyped form of Pipe for chains whose length or types are
// only known at runtime. Each function must accept what the previous one
// returned; a mismatched type assertion inside a function panics as usual.
func Apply(value any, fns ...func(any) any) any {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// TryPipe applies fns left to right, stopping at the first error. The error
// is returned unchanged together with the last successful value; functions
// after the failing one are never called.
func TryPipe[T any](value T, fns ...func(T) (T, error)) (T, error) {
	result := value
	for _, fn := range fns {
		next, err := fn(result)
		if err != nil {
			return result, err
		}
		result = next
	}
	return result, nil
}

// Compose returns a function that applies fns left to right, so that
// Compose(f, g)(x) == Pipe(x, f, g).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		return Pipe(value, fns...)
	}
}
