package domain

// Storage keys of a visitor's local storage
const (
	KeyToken = "token"
	KeyUser  = "user"
)
