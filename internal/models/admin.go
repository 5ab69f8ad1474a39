package models

type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"` // plaintext seed, bcrypt hash accepted
}
