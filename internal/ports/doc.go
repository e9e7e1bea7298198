// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Repository ports are implemented by the persistence adapter and called by the
// application layer. Store and journal ports are implemented by outbound
// adapters and called by the repository and the saga coordinator.
package ports
