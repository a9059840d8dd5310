package di

import (
	"errors"
	"reflect"
)

// Slot is a dependency slot declared on bean type T.
//
// A slot has a declared type D (fixed by Inject). During container construction
// the slot is bound to the single bean assignable to D, by calling the bind
// function supplied at registration. Nothing is written through reflection.
type Slot[T any] struct {
	name    string
	typ     reflect.Type
	accepts func(bean any) bool
	bind    func(target *T, dep any)
}

// Inject declares a slot on T whose declared type is D.
//
// D is usually an interface the dependency implements, or a concrete pointer
// type such as *Engine. bind is called exactly once, with the resolved bean.
//
// Example:
//
//	di.Inject("engine", func(c *Car, e *Engine) { c.engine = e })
func Inject[T any, D any](name string, bind func(target *T, dep D)) Slot[T] {
	return Slot[T]{
		name: name,
		typ:  reflect.TypeFor[D](),
		accepts: func(bean any) bool {
			_, ok := bean.(D)
			return ok
		},
		bind: func(target *T, dep any) {
			if bind != nil {
				bind(target, dep.(D))
			}
		},
	}
}

// slot is the type-erased form of Slot[T] stored on a Descriptor.
type slot struct {
	name    string
	typ     reflect.Type
	accepts func(bean any) bool
	bind    func(target, dep any)
}

// Descriptor identifies one constructible component: a zero-argument
// constructor for *T plus the dependency slots declared on T.
//
// Descriptors are created with Component or ComponentE and are immutable.
type Descriptor struct {
	typ   reflect.Type
	ctor  func() (any, error)
	slots []slot
}

var errNilBean = errors.New("constructor returned nil")

// Component describes *T built by a zero-argument constructor.
// The constructor may be unexported; only the function value is needed.
func Component[T any](ctor func() *T, slots ...Slot[T]) Descriptor {
	var wrapped func() (*T, error)
	if ctor != nil {
		wrapped = func() (*T, error) { return ctor(), nil }
	}
	return ComponentE(wrapped, slots...)
}

// ComponentE is Component for constructors that can fail.
func ComponentE[T any](ctor func() (*T, error), slots ...Slot[T]) Descriptor {
	d := Descriptor{typ: reflect.TypeFor[*T]()}

	if ctor != nil {
		d.ctor = func() (any, error) {
			v, err := ctor()
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, errNilBean
			}
			return v, nil
		}
	}

	d.slots = make([]slot, 0, len(slots))
	for _, s := range slots {
		if s.accepts == nil {
			// zero Slot, not built with Inject
			continue
		}
		d.slots = append(d.slots, slot{
			name:    s.name,
			typ:     s.typ,
			accepts: s.accepts,
			bind: func(target, dep any) {
				s.bind(target.(*T), dep)
			},
		})
	}
	return d
}

// Name returns the qualified component name, e.g. "garage.Car".
func (d Descriptor) Name() string {
	if d.typ == nil {
		return ""
	}
	return d.typ.Elem().String()
}

// Package returns the import path of the component's package.
func (d Descriptor) Package() string {
	if d.typ == nil {
		return ""
	}
	return d.typ.Elem().PkgPath()
}

// Slots returns the declared slot names in declaration order.
func (d Descriptor) Slots() []string {
	out := make([]string, 0, len(d.slots))
	for _, s := range d.slots {
		out = append(out, s.name)
	}
	return out
}

// SlotType returns the declared type of the named slot, e.g. "garage.Player".
func (d Descriptor) SlotType(name string) (string, bool) {
	for _, s := range d.slots {
		if s.name == name {
			return s.typ.String(), true
		}
	}
	return "", false
}

// instantiate runs the constructor, converting a panic into an error.
func (d Descriptor) instantiate() (bean any, err error) {
	if d.ctor == nil {
		return nil, ErrNoConstructor
	}
	defer func() {
		if rec := recover(); rec != nil {
			bean = nil
			err = &PanicError{Value: rec}
		}
	}()
	return d.ctor()
}
