// Package service declares the ports the usecases drive, implemented under internal/infra.
package service

// PasswordHasher hashes staff passwords and verifies login attempts against the stored hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
