// Package memstore provides the volatile, process-lifetime credential store.
package memstore

import (
	"sync"

	"rolodex/internal/domain/entity"
	"rolodex/internal/domain/repository"
)

// credentialStore keeps the email to credential mapping in memory.
// Every restart starts from an empty map; durability is out of scope here.
type credentialStore struct {
	mu          sync.RWMutex
	credentials map[string]entity.Credential
}

// NewCredentialStore is the constructor for credentialStore.
// It returns the implementation as a repository.CredentialStore interface.
func NewCredentialStore() repository.CredentialStore {
	return &credentialStore{
		credentials: make(map[string]entity.Credential),
	}
}

// Put inserts or overwrites the credential for email (last write wins).
func (s *credentialStore) Put(email, digest string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credentials[email] = entity.Credential{
		Email:          email,
		PasswordDigest: digest,
	}
}

// Get returns the digest for email, or ok=false when no record exists.
func (s *credentialStore) Get(email string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	credential, ok := s.credentials[email]

	return credential.PasswordDigest, ok
}
