// Package marknotificationsread implements the Mark All Notifications Read use case.
package marknotificationsread
