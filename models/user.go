package models

// User is a registered shopper. Email is the natural key. The password
// is stored verbatim to match the persisted layout of the demo site;
// this is a recorded weakness, not something to build on.
type User struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
