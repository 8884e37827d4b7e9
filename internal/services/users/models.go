package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is an authorization level. The set is closed.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleTeacher, RoleStudent}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// ParseRole converts s into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// User represents an account in the system
type User struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty" example:"683cdb8aa96ad71e8e075bd1"`
	Email             string        `bson:"email" json:"email" example:"email@server.com"`
	Password          string        `bson:"password" json:"-"`
	Role              Role          `bson:"role" json:"role" example:"student"`
	FirstName         string        `bson:"firstName" json:"firstName" example:"Ada"`
	LastName          string        `bson:"lastName" json:"lastName" example:"Lovelace"`
	AuthenticationKey *string       `bson:"authenticationKey,omitempty" json:"-"`
	Created           time.Time     `bson:"created" json:"created" example:"2025-06-01T23:00:26.005Z"`
	LastQueryTime     *time.Time    `bson:"lastQueryTime,omitempty" json:"lastQueryTime,omitempty" example:"2025-06-02T08:12:00.000Z"`
	LastLogin         *time.Time    `bson:"lastLogin,omitempty" json:"lastLogin,omitempty" example:"2025-06-02T08:10:41.000Z"`
}

// NullableString tells an absent JSON key apart from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON records that the key was present and keeps null as a nil Value.
func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}
