// Package removenotification implements the Delete Notification use case.
package removenotification
