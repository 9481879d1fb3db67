package system

import "context"

// Run executes an operation on its own goroutine and delivers the result
// on a buffered channel, so the caller can await it without blocking the
// goroutine that triggered the work.
//
// The channel is buffered (size 1) and closed after the result is sent,
// so the operation goroutine never leaks even if the caller abandons the
// channel. The operation receives the caller's context; whether and when
// it honors cancellation is the operation's own policy.
func Run[T any](ctx context.Context, operation func(context.Context) T) <-chan T {
	out := make(chan T, 1)

	go func() {
		defer close(out)
		out <- operation(ctx)
	}()

	return out
}

// Await is a convenience wrapper that runs the operation and blocks
// until its result is available.
func Await[T any](ctx context.Context, operation func(context.Context) T) T {
	return <-Run(ctx, operation)
}
