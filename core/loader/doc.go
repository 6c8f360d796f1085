// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its enablement
// check and route registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// Features such as 'interfaces' and 'integrity' are developed and tested in isolation.
package loader
