package usecasecontract

// IValidator provides service-level input validation beyond binding tags.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
