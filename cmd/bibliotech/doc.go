// Command bibliotech is a terminal front end for the library core.
//
// Every invocation loads the persisted snapshot from the configured storage backend,
// runs one command or query against an in-memory Store and persists library data changes.
// Configuration is read from the environment, optionally preloaded from a .env file.
package main
