package entity

// User is a registered shop customer. Admin status is not a column; it is
// derived per request from the configured admin email.
type User struct {
	BaseSimple
	Email        string  `db:"email"`
	PasswordHash string  `db:"hashed_password"`
	FirstName    string  `db:"first_name"`
	Phone        *string `db:"phone"`
}
