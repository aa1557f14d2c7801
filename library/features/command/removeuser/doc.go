// Package removeuser implements the Delete User use case.
//
// A member holding at least one active loan can't be deleted; the refusal leaves the state untouched.
package removeuser
