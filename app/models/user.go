package models

import "time"

// User is a registered shopper.
//
// Password is stored and compared in cleartext. This is a known defect of
// the toy auth scheme and is kept as-is.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	Orders    []int64   `json:"orders"`
	IsAdmin   bool      `json:"isAdmin,omitempty"`
}

// Clone returns a deep copy of u.
func (u User) Clone() User {
	u.Orders = append([]int64{}, u.Orders...)
	return u
}
