// Package server runs the HTTP transport of the dispatch server and shuts it
// down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
