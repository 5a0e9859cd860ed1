package ports

// PasswordHasher is a one-way transform for credential verification. The
// digest encodes its own salt and cost, so Verify needs no side-channel
// state and must return false (never panic) on a malformed digest.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
