package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID        int64      `db:"id" json:"id"`
	LastName  string     `db:"last_name" json:"lastName"`
	FirstName string     `db:"first_name" json:"firstName"`
	Pseudo    string     `db:"pseudo" json:"pseudo"`
	Email     string     `db:"email" json:"email"`
	Password  string     `db:"password" json:"password"` // bcrypt hash, never the plaintext
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt *time.Time `db:"deleted_at" json:"deletedAt,omitempty"`
}

// Trashed reports whether the user is soft deleted.
func (u *User) Trashed() bool {
	return u.DeletedAt != nil
}

// Claims defines the structure of the JWT claims.
type Claims struct {
	ID        int64  `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
