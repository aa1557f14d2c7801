// Package importdata implements the Import Data use case.
//
// An import replaces books, users and loans and leaves every other collection untouched.
package importdata
