package entity

type User struct {
	Base
	Username string `json:"username"`
}
