// Package beanbox is a minimal by-type dependency container and the tools
// around it.
//
// Layout:
//   - di: descriptors, the two-phase container, GetBean, and the component catalog
//   - manifest: YAML selection of catalog components
//   - config: environment / .env configuration for the CLI
//   - cmd/beanbox: CLI to inspect the catalog, wire a container and run the demo
//   - examples/garage: demo components (Engine, Car, Radio, Horn, Siren)
//
// Wiring stays explicit: every component is registered with its constructor
// and setters, and beans are matched by type, never by name.
package beanbox
