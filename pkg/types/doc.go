// Package types holds the error categories shared by the keyremap packages.
//
// Errors returned by keyremap wrap one of the sentinels declared here, so
// callers can branch with errors.Is or inspect the category with KindOf.
//
// This package has no dependencies beyond the standard library.
package types
