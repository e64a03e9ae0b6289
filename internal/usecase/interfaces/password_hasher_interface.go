package interfaces

// IPasswordHasher hashes and verifies user passwords (bcrypt in production).

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
