// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// CredentialStore holds the email to password-digest mapping.
// Implementations may be volatile; the application layer must not assume durability.
type CredentialStore interface {
	// Put inserts or overwrites the digest for email (last write wins).
	Put(email, digest string)

	// Get returns the digest for email, or ok=false when no record exists.
	Get(email string) (digest string, ok bool)
}
