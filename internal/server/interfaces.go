package server

// Server defines the lifecycle of the transport servers of this package.
//
// RunServer blocks until shutdown is requested; Shutdown releases the
// listener and waits for in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
