// Package invariant provides cheap, panic-on-violation checks for the
// bookkeeping invariants the codec depends on (index/prev consistency).
// It is grounded on the assert helper in DaanV2-go-webp/pkg/assert,
// generalized to carry a message so a violation is diagnosable instead
// of just a bare stack trace.
package invariant

import "fmt"

// Enabled gates whether Check panics. It defaults to false so production
// calls never panic (callers still evaluate the condition); TestMain in package qoi flips it on so the test
// suite catches state-machine bugs the moment they happen rather than as
// a downstream decode mismatch.
var Enabled = false

// Check panics with msg if condition is false and checking is enabled.
func Check(condition bool, format string, args ...any) {
	if Enabled && !condition {
		panic(fmt.Sprintf("qoi: invariant violated: "+format, args...))
	}
}
