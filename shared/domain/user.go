package domain

type RegisterUser struct {
	Username Username
	Password Password
	Fullname string
}

type RegisteredUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}

// UserCredentials is what login needs from storage. PasswordHash is a bcrypt
// hash, never the plain password.
type UserCredentials struct {
	Id           UserId
	Username     Username
	PasswordHash string
}
