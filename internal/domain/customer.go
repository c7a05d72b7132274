package domain

import "time"

// Customer is a CRM record owned by exactly one user account.
type Customer struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Phone     *string
	Company   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
