// Package entity contains the pure domain objects of the application.
package entity

// Credential maps an account email to its password digest.
// Records are volatile: they live only for the lifetime of the process.
type Credential struct {
	Email          string
	PasswordDigest string
}
