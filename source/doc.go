// Package source provides types.RegistrationSource implementations.
//
// A registration source supplies the assignment engine's input snapshot:
// the grouping's capacity parameters and the registered participants. Host
// applications typically back the interface with their own persistence
// layer; the Static source in this package serves tests and deployments
// whose data is known up front.
package source
