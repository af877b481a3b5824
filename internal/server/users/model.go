package users

// User is a single forum account loaded from the users file. Records are
// immutable for the process lifetime; user management happens out of band
// (see cmd/passwd).
type User struct {
	Username     string `json:"-"`
	PasswordHash string `json:"password"`
}
