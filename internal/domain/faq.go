package domain

import "time"

// FAQ is a public knowledge-base entry. It has no owning user; reads are
// public and writes are admin-only.
type FAQ struct {
	ID        string
	Question  string
	Answer    string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
