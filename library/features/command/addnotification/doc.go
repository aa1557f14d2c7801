// Package addnotification implements the Add Notification use case.
//
// Notifications are prepended so the newest comes first. They are never persisted and never audited.
package addnotification
