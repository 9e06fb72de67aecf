package domain

type User struct {
	UserID   string
	UserName string
}
