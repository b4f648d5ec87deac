package contract

// IRandomGenerator produces URL-safe random tokens of n bytes entropy.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}
