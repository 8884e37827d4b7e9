package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weather-api/internal/config"
	"weather-api/internal/entity"
	"weather-api/internal/utils/crypto"
	"weather-api/internal/utils/sanitize"
	"weather-api/internal/utils/validate"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// activityTimeout bounds the detached lastQueryTime write.
const activityTimeout = 5 * time.Second

// Service handles user accounts, credentials and roles
type Service struct {
	repo   Repository
	config config.Config
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new users service
func NewService(repo Repository, cfg config.Config, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
		log:    log,
		now:    storeNow,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"email@server.com"`
	Password string `json:"password" validate:"required" example:"password"`
}

// LogoutRequest represents a logout request
type LogoutRequest struct {
	AuthenticationKey string `json:"authenticationKey" validate:"required" example:"22ebfdea-7535-43b4-9436-7ca2ab9f2408"`
}

// CreateRequest represents a user creation request made by staff
type CreateRequest struct {
	Email     string `json:"email" validate:"required,email" example:"email@server.com"`
	Password  string `json:"password" validate:"required,max=72" example:"password"`
	Role      string `json:"role" validate:"required,oneof=admin teacher student" example:"teacher"`
	FirstName string `json:"firstName" validate:"required" example:"Firstname"`
	LastName  string `json:"lastName" validate:"required" example:"Lastname"`
}

// RegisterRequest represents a self-service registration request
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email" example:"email@server.com"`
	Password  string `json:"password" validate:"required,max=72" example:"password"`
	FirstName string `json:"firstName" validate:"required" example:"Firstname"`
	LastName  string `json:"lastName" validate:"required" example:"Lastname"`
}

// UpdateRequest represents a partial user update. Only supplied keys change.
// AuthenticationKey may be sent as null or "" to sign the user out.
type UpdateRequest struct {
	ID                string         `json:"id" validate:"required,mongodb" example:"641a6bf00e2c74fca47ea4a1"`
	Email             *string        `json:"email,omitempty" validate:"omitempty,email" example:"email@server.com"`
	Password          *string        `json:"password,omitempty" validate:"omitempty,min=1,max=72" example:"password"`
	Role              *string        `json:"role,omitempty" validate:"omitempty,oneof=admin teacher student" example:"teacher"`
	FirstName         *string        `json:"firstName,omitempty" validate:"omitempty,min=1" example:"Firstname"`
	LastName          *string        `json:"lastName,omitempty" validate:"omitempty,min=1" example:"Lastname"`
	AuthenticationKey NullableString `json:"authenticationKey" swaggertype:"string" example:"be39783e-0aaa-4fc8-b0d8-5e3f0a8b1465"`
}

// Fields returns the keys the client supplied, without the identifier.
func (r UpdateRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Password != nil {
		fields["password"] = *r.Password
	}
	if r.Role != nil {
		fields["role"] = Role(*r.Role)
	}
	if r.FirstName != nil {
		fields["firstName"] = sanitize.Name(*r.FirstName)
	}
	if r.LastName != nil {
		fields["lastName"] = sanitize.Name(*r.LastName)
	}
	if r.AuthenticationKey.Set {
		// an empty key signs the user out like null does
		if r.AuthenticationKey.Value == nil || *r.AuthenticationKey.Value == "" {
			fields["authenticationKey"] = nil
		} else {
			fields["authenticationKey"] = *r.AuthenticationKey.Value
		}
	}
	return fields
}

// RoleRequest changes the role of every user created within an inclusive date range
type RoleRequest struct {
	StartDate string `json:"startDate" validate:"required,date" example:"2023-05-01"`
	EndDate   string `json:"endDate" validate:"required,date" example:"2023-05-07"`
	NewRole   string `json:"newRole" validate:"required,oneof=admin teacher student" example:"teacher"`
}

// RoleResult reports how many users a bulk role change touched
type RoleResult struct {
	Matched  int64 `json:"matched" example:"2"`
	Modified int64 `json:"modified" example:"2"`
}

// List returns users, bounded by the configured list limit.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	users, err := s.repo.List(ctx, int64(s.config.ListLimit))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

// GetByKey returns the user currently holding the authentication key.
func (s *Service) GetByKey(ctx context.Context, key string) (*User, error) {
	return s.repo.FindByKey(ctx, key)
}

// Login checks the credentials and issues a fresh authentication key.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		s.log.Error("failed to find user by email", "error", err)
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := crypto.CheckPassword(req.Password, user.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	key := crypto.NewAuthenticationKey()
	projected := entity.Project(user.ID.Hex(), map[string]any{
		"authenticationKey": key,
		"lastLogin":         s.now(),
	})
	if _, err := s.repo.Update(ctx, projected); err != nil {
		s.log.Error("failed to store authentication key", "error", err, "user_id", user.ID.Hex())
		return "", fmt.Errorf("store authentication key: %w", err)
	}

	return key, nil
}

// Logout clears the authentication key. An unknown key yields ErrUserNotFound.
func (s *Service) Logout(ctx context.Context, key string) error {
	user, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return err
	}

	projected := entity.Project(user.ID.Hex(), map[string]any{"authenticationKey": nil})
	if _, err := s.repo.Update(ctx, projected); err != nil {
		return fmt.Errorf("clear authentication key: %w", err)
	}
	return nil
}

// Create stores a user with the requested role. A password that is already a bcrypt
// hash is stored as is.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*User, error) {
	role, err := ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := crypto.EnsureHashed(req.Password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.insert(ctx, req.Email, hash, role, req.FirstName, req.LastName)
}

// Register stores a self-registered user. The role is always student and the
// password is always hashed.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	hash, err := crypto.HashPassword(req.Password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.insert(ctx, req.Email, hash, RoleStudent, req.FirstName, req.LastName)
}

func (s *Service) insert(ctx context.Context, email, hash string, role Role, firstName, lastName string) (*User, error) {
	user := &User{
		ID:        bson.NewObjectID(),
		Email:     normalizeEmail(email),
		Password:  hash,
		Role:      role,
		FirstName: sanitize.Name(firstName),
		LastName:  sanitize.Name(lastName),
		Created:   s.now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrDuplicate
		}
		s.log.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Update applies a partial update and returns the stored user.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*User, error) {
	if _, err := parseID(req.ID); err != nil {
		return nil, err
	}

	fields := req.Fields()
	if v, ok := fields["email"].(string); ok {
		fields["email"] = normalizeEmail(v)
	}
	if v, ok := fields["password"].(string); ok {
		hash, err := crypto.EnsureHashed(v, s.config.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["password"] = hash
	}

	return s.repo.Update(ctx, entity.Project(req.ID, fields))
}

// UpdateRoleByCreated sets role on every user created from the start of startDate up to
// the end of endDate (UTC). ErrUserNotFound is returned when nobody falls in the range.
func (s *Service) UpdateRoleByCreated(ctx context.Context, req RoleRequest) (*RoleResult, error) {
	role, err := ParseRole(req.NewRole)
	if err != nil {
		return nil, err
	}
	from, err := validate.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := validate.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(from) {
		return nil, ErrInvalidDateRange
	}

	matched, modified, err := s.repo.UpdateRoleByCreated(ctx, from, end.Add(24*time.Hour), role)
	if err != nil {
		return nil, fmt.Errorf("update roles: %w", err)
	}
	if matched == 0 {
		return nil, ErrUserNotFound
	}

	return &RoleResult{Matched: matched, Modified: modified}, nil
}

// Delete removes one user and returns the deleted count.
func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	if n == 0 {
		return 0, ErrUserNotFound
	}
	return n, nil
}

// DeleteMany removes every listed user and returns the deleted count.
func (s *Service) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseID(id)
		if err != nil {
			return 0, err
		}
		oids = append(oids, oid)
	}

	n, err := s.repo.DeleteMany(ctx, oids)
	if err != nil {
		return 0, fmt.Errorf("delete users: %w", err)
	}
	if n == 0 {
		return 0, ErrUserNotFound
	}
	return n, nil
}

// Authenticate resolves an authentication key to its user.
func (s *Service) Authenticate(ctx context.Context, key string) (*User, error) {
	return s.repo.FindByKey(ctx, key)
}

// RecordActivity stamps lastQueryTime in the background. The caller never waits and
// a failed write is only logged.
func (s *Service) RecordActivity(id bson.ObjectID) {
	at := s.now()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), activityTimeout)
		defer cancel()

		if err := s.repo.TouchLastQuery(ctx, id, at); err != nil {
			s.log.Warn("failed to record user activity", "error", err, "user_id", id.Hex())
		}
	}()
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// storeNow is the current UTC time at the store's millisecond precision, so a value
// returned from a write equals the one read back later.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
