// Package observability provides spies for the logging, metrics and tracing interfaces
// used by the snapshot store, the command workflow and the observable wrappers.
//
// All spies are safe for concurrent use and copy incoming labels and attributes,
// so tests can inspect them after the code under test has moved on.
package observability
