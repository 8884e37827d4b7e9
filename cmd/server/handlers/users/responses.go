package users

import (
	"weather-api/cmd/server/handlers/handlerutil"
	"weather-api/internal/services/users"
)

// ListResponse carries a list of users
type ListResponse struct {
	handlerutil.Envelope
	Users []*users.User `json:"users"`
}

// UserResponse carries one user
type UserResponse struct {
	handlerutil.Envelope
	User *users.User `json:"user"`
}

// LoginResponse carries a freshly issued authentication key
type LoginResponse struct {
	handlerutil.Envelope
	AuthenticationKey string `json:"authenticationKey" example:"be39783e-0aaa-4fc8-b0d8-5e3f0a8b1465"`
}

// RoleResponse reports a bulk role change
type RoleResponse struct {
	handlerutil.Envelope
	Matched  int64 `json:"matched" example:"3"`
	Modified int64 `json:"modified" example:"2"`
}

// DeletedResponse reports how many users were removed
type DeletedResponse struct {
	handlerutil.Envelope
	Deleted int64 `json:"deleted" example:"1"`
}

// IDParams is the :id route parameter
type IDParams struct {
	ID string `params:"id" validate:"required,mongodb"`
}

// KeyParams is the :authenticationKey route parameter
type KeyParams struct {
	AuthenticationKey string `params:"authenticationKey" validate:"required"`
}
