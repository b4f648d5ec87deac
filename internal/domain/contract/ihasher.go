package contract

// IHasher hashes passwords (bcrypt) and opaque tokens (sha256).
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	HashString(s string) string
	CheckHash(s, hash string) bool
}
