package di

import (
	"reflect"
	"sort"

	"go.uber.org/zap"
)

// ResolutionStatus is the outcome of resolving one slot.
type ResolutionStatus string

const (
	StatusBound     ResolutionStatus = "bound"
	StatusMissing   ResolutionStatus = "missing"
	StatusAmbiguous ResolutionStatus = "ambiguous"
)

// Resolution records how one slot was resolved during New.
type Resolution struct {
	Bean   string
	Slot   string
	Type   string
	Status ResolutionStatus

	// Provider is the bound bean's name (StatusBound only).
	Provider string

	// Candidates lists every matching bean, sorted. Empty for StatusMissing.
	Candidates []string
}

// bean is one instantiated component plus the dependencies bound into it.
type bean struct {
	desc Descriptor
	val  any

	// deps maps slot name to the bound bean, for introspection.
	deps map[string]any
}

// Container owns one bean per descriptor.
//
// It is built once by New and never changes afterwards, so it can be shared
// by concurrent readers. The beans themselves are not synchronized.
type Container struct {
	beans       []*bean
	resolutions []Resolution
}

// New builds a container in two phases.
//
// Phase 1 instantiates every descriptor in order; the first failure aborts with
// a *ConstructionError. Phase 2 binds every slot to the single bean assignable
// to the slot type. Slots with zero or several candidates are handled by the
// SlotPolicy (WithSlotPolicy). On error no container is returned.
func New(descriptors []Descriptor, opts ...Option) (*Container, error) {
	o := buildOptions(opts)

	if len(descriptors) == 0 {
		return nil, ErrNoDescriptors
	}

	seen := make(map[reflect.Type]struct{}, len(descriptors))
	for _, d := range descriptors {
		if d.typ == nil {
			continue // reported by instantiate
		}
		if _, dup := seen[d.typ]; dup {
			return nil, &DuplicateDescriptorError{Component: d.Name()}
		}
		seen[d.typ] = struct{}{}
	}

	c := &Container{beans: make([]*bean, 0, len(descriptors))}

	for _, d := range descriptors {
		v, err := d.instantiate()
		if err != nil {
			o.log.Error("component construction failed",
				zap.String("component", d.Name()), zap.Error(err))
			return nil, &ConstructionError{Component: d.Name(), Cause: err}
		}
		c.beans = append(c.beans, &bean{desc: d, val: v, deps: make(map[string]any, len(d.slots))})
	}

	for _, b := range c.beans {
		for _, s := range b.desc.slots {
			r := c.resolve(b, s)
			c.resolutions = append(c.resolutions, r)
			if r.Status == StatusBound {
				continue
			}
			switch o.policy {
			case SlotPolicyError:
				return nil, &UnresolvedSlotError{Resolution: r}
			case SlotPolicyIgnore:
			default:
				o.log.Warn("dependency slot left unresolved",
					zap.String("bean", r.Bean),
					zap.String("slot", r.Slot),
					zap.String("type", r.Type),
					zap.String("status", string(r.Status)),
					zap.Strings("candidates", r.Candidates))
			}
		}
	}

	o.log.Debug("container built",
		zap.Int("beans", len(c.beans)),
		zap.Int("slots", len(c.resolutions)))
	return c, nil
}

// resolve binds s on b when exactly one bean matches.
func (c *Container) resolve(b *bean, s slot) Resolution {
	r := Resolution{Bean: b.desc.Name(), Slot: s.name, Type: s.typ.String()}

	var match *bean
	for _, cand := range c.beans {
		if s.accepts(cand.val) {
			match = cand
			r.Candidates = append(r.Candidates, cand.desc.Name())
		}
	}
	sort.Strings(r.Candidates)

	switch len(r.Candidates) {
	case 0:
		r.Status = StatusMissing
	case 1:
		s.bind(b.val, match.val)
		b.deps[s.name] = match.val
		r.Status = StatusBound
		r.Provider = match.desc.Name()
	default:
		r.Status = StatusAmbiguous
	}
	return r
}

// GetBean returns the single bean assignable to T.
//
// T is usually a pointer to a component type (*Engine) or an interface.
// It returns *NotFoundError when nothing matches and *AmbiguousBeanError when
// several beans match.
func GetBean[T any](c *Container) (T, error) {
	var zero T
	typeName := reflect.TypeFor[T]().String()
	if c == nil {
		return zero, &NotFoundError{Type: typeName}
	}

	var (
		found T
		names []string
	)
	for _, b := range c.beans {
		if v, ok := b.val.(T); ok {
			found = v
			names = append(names, b.desc.Name())
		}
	}

	switch len(names) {
	case 0:
		return zero, &NotFoundError{Type: typeName}
	case 1:
		return found, nil
	default:
		sort.Strings(names)
		return zero, &AmbiguousBeanError{Type: typeName, Candidates: names}
	}
}

// MustGetBean is GetBean that panics on error.
func MustGetBean[T any](c *Container) T {
	v, err := GetBean[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of beans.
func (c *Container) Len() int { return len(c.beans) }

// Names returns the bean names, sorted.
func (c *Container) Names() []string {
	out := make([]string, 0, len(c.beans))
	for _, b := range c.beans {
		out = append(out, b.desc.Name())
	}
	sort.Strings(out)
	return out
}

// Resolutions returns a copy of the slot resolutions in resolution order.
func (c *Container) Resolutions() []Resolution {
	out := make([]Resolution, len(c.resolutions))
	copy(out, c.resolutions)
	return out
}

// Unresolved returns the resolutions that are not StatusBound.
func (c *Container) Unresolved() []Resolution {
	var out []Resolution
	for _, r := range c.resolutions {
		if r.Status != StatusBound {
			out = append(out, r)
		}
	}
	return out
}

// Dependency returns the bean bound into slot on the named bean.
func (c *Container) Dependency(beanName, slot string) (any, bool) {
	for _, b := range c.beans {
		if b.desc.Name() != beanName {
			continue
		}
		v, ok := b.deps[slot]
		return v, ok
	}
	return nil, false
}
