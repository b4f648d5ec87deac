package contract

// IUUIDGenerator produces unique identifiers for new documents.
type IUUIDGenerator interface {
	NewUUID() string
}
