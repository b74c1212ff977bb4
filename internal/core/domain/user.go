package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// ParseUserStatus validates a wire-format status string.
func ParseUserStatus(s string) (UserStatus, bool) {
	switch st := UserStatus(s); st {
	case UserStatusActive, UserStatusBlocked:
		return st, true
	}
	return "", false
}

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	JoinDate     time.Time  `json:"joinDate"`
	TotalOrders  int        `json:"totalOrders"`
	PasswordHash string     `json:"-"`
}
