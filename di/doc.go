// Package di is a small by-type dependency container.
//
// Components are described explicitly instead of discovered by reflection:
//
//   - Component[T] / ComponentE[T] wrap a zero-argument constructor for *T.
//   - Inject[T, D] declares a dependency slot on T with declared type D and a
//     setter that binds the resolved bean.
//   - New builds a Container in two phases: instantiate every component, then
//     bind every slot to the single bean assignable to its declared type.
//   - GetBean[T] looks a bean up by type, never by name.
//
// There is no scoping, no lifecycle, no cycle detection and no recursive
// construction. Cycles are fine because every bean exists before any slot is
// bound.
//
// Unresolved slots (zero or several candidates) follow a SlotPolicy:
//
//   - warn (default): leave the slot empty, log a warning
//   - ignore: leave the slot empty
//   - error: fail New with *UnresolvedSlotError
//
// Discovery is the caller's business. Catalog (and the process-wide Register /
// Default pair) lets packages publish their components and lets callers pick
// them by package with Scan.
//
// Example
//
//	c, err := di.New([]di.Descriptor{
//		di.Component(NewEngine),
//		di.Component(NewCar, di.Inject("engine", func(c *Car, e *Engine) { c.engine = e })),
//	})
//	if err != nil {
//		// handle construction failure
//	}
//	car := di.MustGetBean[*Car](c)
//
// Import
//
//	"github.com/sghaida/beanbox/di"
package di
