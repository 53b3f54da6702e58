package server

// Server is the lifecycle contract of a transport server. RunServer blocks
// until shutdown is requested; Shutdown releases the listener and drains
// in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
