package stream

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Policy selects what happens when an operation that needs a finite stream
// receives an endless one.
type Policy int

const (
	// PolicyError reports the violation as an error matching ErrEndlessStream.
	PolicyError Policy = iota
	// PolicyAbort logs the violation at fatal level and exits the process.
	PolicyAbort
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case PolicyError:
		return "error"
	case PolicyAbort:
		return "abort"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "error" or "abort" (case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "":
		return PolicyError, nil
	case "abort":
		return PolicyAbort, nil
	default:
		return PolicyError, fmt.Errorf("unknown endless violation policy %q", s)
	}
}

// Options are process-wide engine settings. They are meant to be set once,
// at startup, before any pipeline is built.
type Options struct {
	// OnEndless is the policy applied to endless-stream violations.
	OnEndless Policy
	// TypeReporting enables runtime type identity on Any.
	TypeReporting bool
}

// DefaultOptions returns the options selected by build tags: the
// stream_abort tag switches the policy to PolicyAbort and the
// stream_notypeinfo tag disables type reporting.
func DefaultOptions() Options {
	return Options{
		OnEndless:     defaultPolicy,
		TypeReporting: defaultTypeReporting,
	}
}

var current atomic.Pointer[Options]

func init() {
	o := DefaultOptions()
	current.Store(&o)
}

// Configure replaces the process-wide options.
func Configure(o Options) {
	current.Store(&o)
}

// CurrentOptions returns the process-wide options.
func CurrentOptions() Options {
	return *current.Load()
}
