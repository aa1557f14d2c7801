// Package oteladapters provides OpenTelemetry implementations of the snapshotstore
// observability interfaces. The same adapters are handed to the command and query
// wrappers of the library shell, so one OpenTelemetry setup covers storage and
// domain operations alike.
package oteladapters
