// Package assert provides invariant assertions for programmer errors.
// They panic when violated. Building with -tags assertions_disabled turns
// every assertion into a no-op.
package assert

import "fmt"

func failure(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
