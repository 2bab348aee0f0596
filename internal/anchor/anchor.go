// Package anchor invokes representative entry points of curated runtime
// subsystems so their supporting type graphs are compiled into the final
// binary. No call is made for its result; each exists to put the
// subsystem's API surface on the reachable side of the linker's analysis.
//
// Every anchor absorbs its own failures. Running without a network, in a
// sandbox, or on a locked-down host changes the Absorbed count, never the
// outcome of the pass.
package anchor

import "context"

// Result records what one anchor attempted.
type Result struct {
	Name     string // anchor name as reported by the orchestrator
	Calls    int    // API calls attempted
	Absorbed int    // calls whose failure or panic was swallowed
}

// Anchor is one curated subsystem exerciser. Exercise must return on
// every path: errors and panics from the underlying calls stay local.
type Anchor interface {
	Name() string
	Exercise(ctx context.Context) Result
}

// All returns the curated anchors in their fixed execution order. The
// set is configuration, not doctrine; extending or narrowing it does not
// change how any single anchor behaves.
func All() []Anchor {
	return []Anchor{Network{}, Crypto{}, Logging{}, NewStorage()}
}

// Sink pins every metadata read the anchors perform; exported so the
// linker must treat the writes as observable.
var Sink uint64

func keep(s string) {
	Sink = Sink*31 + uint64(len(s))
	if len(s) > 0 {
		Sink += uint64(s[0])
	}
}

func keepBytes(b []byte) {
	Sink = Sink*31 + uint64(len(b))
	if len(b) > 0 {
		Sink += uint64(b[0])
	}
}

// call runs one anchored API call, counting the attempt and absorbing
// any error or panic it produces.
func call(res *Result, fn func() error) {
	res.Calls++
	defer func() {
		if recover() != nil {
			res.Absorbed++
		}
	}()
	if err := fn(); err != nil {
		res.Absorbed++
	}
}
