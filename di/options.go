package di

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// SlotPolicy decides what New does with a slot that has zero or several
// candidate beans.
type SlotPolicy string

const (
	// SlotPolicyWarn leaves the slot empty and logs a warning. Default.
	SlotPolicyWarn SlotPolicy = "warn"

	// SlotPolicyIgnore leaves the slot empty silently.
	SlotPolicyIgnore SlotPolicy = "ignore"

	// SlotPolicyError aborts construction with an *UnresolvedSlotError.
	SlotPolicyError SlotPolicy = "error"
)

// ParseSlotPolicy parses "warn", "ignore" or "error". Empty means warn.
func ParseSlotPolicy(s string) (SlotPolicy, error) {
	switch p := SlotPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return SlotPolicyWarn, nil
	case SlotPolicyWarn, SlotPolicyIgnore, SlotPolicyError:
		return p, nil
	default:
		return "", InvalidSlotPolicyError{Value: s}
	}
}

// InvalidSlotPolicyError is returned by ParseSlotPolicy for unknown values.
type InvalidSlotPolicyError struct{ Value string }

// Error implements the error interface.
func (e InvalidSlotPolicyError) Error() string {
	return "di: invalid slot policy " + strconv.Quote(e.Value) + " (want warn|ignore|error)"
}

type options struct {
	log    *zap.Logger
	policy SlotPolicy
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger used for construction diagnostics.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSlotPolicy sets the unresolved-slot policy. Empty values are ignored.
func WithSlotPolicy(p SlotPolicy) Option {
	return func(o *options) {
		if p != "" {
			o.policy = p
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop(), policy: SlotPolicyWarn}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
