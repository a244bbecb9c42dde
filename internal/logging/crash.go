package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// LogPanic logs a panic with its stack trace and panics again. It must be
// deferred directly:
//
//	defer logging.LogPanic(ctx)
func LogPanic(ctx context.Context) {
	if r := recover(); r != nil {
		FromContext(ctx).Error().
			Interface("panic", r).
			Str("go_version", runtime.Version()).
			Str("os", runtime.GOOS).
			Str("arch", runtime.GOARCH).
			Bytes("stack", debug.Stack()).
			Msg("panic")
		panic(r)
	}
}
