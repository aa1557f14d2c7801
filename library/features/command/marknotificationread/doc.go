// Package marknotificationread implements the Mark Notification Read use case.
//
// Marking an absent or already read notification is a no-op.
package marknotificationread
