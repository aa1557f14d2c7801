// Package popularbooks implements the Popular Books query.
//
// Books are ranked by how many loans reference them. Ties keep catalog order.
package popularbooks
