package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-api/cmd/server/handlers/handlerutil"
	"weather-api/cmd/server/handlers/httperr"
	"weather-api/internal/services/users"
	"weather-api/internal/utils/crypto"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for users service
type Service interface {
	List(ctx context.Context) ([]*users.User, error)
	Get(ctx context.Context, id string) (*users.User, error)
	GetByKey(ctx context.Context, key string) (*users.User, error)
	Login(ctx context.Context, req users.LoginRequest) (string, error)
	Logout(ctx context.Context, key string) error
	Create(ctx context.Context, req users.CreateRequest) (*users.User, error)
	Register(ctx context.Context, req users.RegisterRequest) (*users.User, error)
	Update(ctx context.Context, req users.UpdateRequest) (*users.User, error)
	UpdateRoleByCreated(ctx context.Context, req users.RoleRequest) (*users.RoleResult, error)
	Delete(ctx context.Context, id string) (int64, error)
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

// Handlers contains the users HTTP handlers
type Handlers struct {
	service   Service
	validator *validator.Validate
}

// NewHandlers creates new users handlers
func NewHandlers(service Service, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// List handles listing users
// @Summary List users
// @Description Returns at most the configured list limit of users.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ListResponse
// @Failure 401 {object} httperr.E
// @Failure 403 {object} httperr.E
// @Router /users [get]
func (h *Handlers) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext())
	if err != nil {
		return h.fail(c, err, "List", "")
	}

	return c.JSON(ListResponse{Envelope: handlerutil.OK("List of all Users"), Users: list})
}

// Get handles fetching one user
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /users/{id} [get]
func (h *Handlers) Get(c *fiber.Ctx) error {
	var p IDParams
	if err := handlerutil.ParseAndValidateParams(c, &p, h.validator, "Get"); err != nil {
		return err
	}

	user, err := h.service.Get(c.UserContext(), p.ID)
	if err != nil {
		return h.fail(c, err, "Get", fmt.Sprintf("No User with ID %s found", p.ID))
	}

	return c.JSON(UserResponse{Envelope: handlerutil.OK("Get a user by ID"), User: user})
}

// GetByKey handles fetching the user holding an authentication key
// @Summary Get a user by authentication key
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param authenticationKey path string true "Authentication key"
// @Success 200 {object} UserResponse
// @Failure 404 {object} httperr.E
// @Router /users/by-key/{authenticationKey} [get]
func (h *Handlers) GetByKey(c *fiber.Ctx) error {
	var p KeyParams
	if err := handlerutil.ParseAndValidateParams(c, &p, h.validator, "GetByKey"); err != nil {
		return err
	}

	user, err := h.service.GetByKey(c.UserContext(), p.AuthenticationKey)
	if err != nil {
		return h.fail(c, err, "GetByKey", "No User with that authentication key found")
	}

	return c.JSON(UserResponse{Envelope: handlerutil.OK("Get user by authentication key"), User: user})
}

// Login handles credential checks
// @Summary Log in
// @Description Checks the credentials and issues a new authentication key.
// @Tags users
// @Accept json
// @Produce json
// @Param request body users.LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} httperr.E
// @Failure 429 {object} httperr.E
// @Router /users/login [post]
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req users.LoginRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Login"); err != nil {
		return err
	}

	key, err := h.service.Login(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, "Login", "")
	}

	return c.JSON(LoginResponse{Envelope: handlerutil.OK("Login Successful"), AuthenticationKey: key})
}

// Logout handles key invalidation
// @Summary Log out
// @Tags users
// @Accept json
// @Produce json
// @Param request body users.LogoutRequest true "Logout request"
// @Success 200 {object} handlerutil.Envelope
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /users/logout [post]
func (h *Handlers) Logout(c *fiber.Ctx) error {
	var req users.LogoutRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Logout"); err != nil {
		return err
	}

	if err := h.service.Logout(c.UserContext(), req.AuthenticationKey); err != nil {
		return h.fail(c, err, "Logout", "No User with that authentication key found")
	}

	return c.JSON(handlerutil.OK("Logout Successful"))
}

// Create handles account creation by staff
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body users.CreateRequest true "Create user request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} httperr.E
// @Failure 409 {object} httperr.E
// @Router /users [post]
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req users.CreateRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Create"); err != nil {
		return err
	}

	user, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, "Create", "")
	}

	return c.JSON(UserResponse{Envelope: handlerutil.OK("User created Successfully"), User: user})
}

// Register handles self-service sign up
// @Summary Register as a student
// @Tags users
// @Accept json
// @Produce json
// @Param request body users.RegisterRequest true "Registration request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} httperr.E
// @Failure 409 {object} httperr.E
// @Router /users/register [post]
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req users.RegisterRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Register"); err != nil {
		return err
	}

	user, err := h.service.Register(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, "Register", "")
	}

	return c.JSON(UserResponse{Envelope: handlerutil.OK("Registration successful"), User: user})
}

// Update handles a partial update addressed by the id in the body
// @Summary Update a user
// @Description Only the supplied fields change. Sending authenticationKey as null signs the user out.
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body users.UpdateRequest true "Update request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /users/update [patch]
func (h *Handlers) Update(c *fiber.Ctx) error {
	var req users.UpdateRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Update"); err != nil {
		return err
	}

	return h.update(c, req, "Update")
}

// Replace handles a partial update addressed by the path id
// @Summary Update a user by ID
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param request body users.UpdateRequest true "Update request; id is taken from the path"
// @Success 200 {object} UserResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /user/{id} [put]
func (h *Handlers) Replace(c *fiber.Ctx) error {
	var req users.UpdateRequest
	if err := handlerutil.ParseBody(c, &req, "Replace"); err != nil {
		return err
	}
	req.ID = c.Params("id")
	if err := handlerutil.ValidateStruct(c, &req, h.validator, "Replace"); err != nil {
		return err
	}

	return h.update(c, req, "Replace")
}

func (h *Handlers) update(c *fiber.Ctx, req users.UpdateRequest, handlerName string) error {
	user, err := h.service.Update(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, handlerName, fmt.Sprintf("No User with ID %s found", req.ID))
	}

	return c.JSON(UserResponse{Envelope: handlerutil.OK("User has been updated"), User: user})
}

// UpdateRole handles bulk role changes
// @Summary Change the role of users created in a date range
// @Description Both dates are inclusive whole UTC days.
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body users.RoleRequest true "Role change request"
// @Success 200 {object} RoleResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /user/role [put]
func (h *Handlers) UpdateRole(c *fiber.Ctx) error {
	var req users.RoleRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "UpdateRole"); err != nil {
		return err
	}

	res, err := h.service.UpdateRoleByCreated(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, "UpdateRole", "No Users created between those dates")
	}

	return c.JSON(RoleResponse{
		Envelope: handlerutil.OK("User role has been updated"),
		Matched:  res.Matched,
		Modified: res.Modified,
	})
}

// Delete handles removing one user
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} DeletedResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /users/deleteOne/{id} [delete]
func (h *Handlers) Delete(c *fiber.Ctx) error {
	var p IDParams
	if err := handlerutil.ParseAndValidateParams(c, &p, h.validator, "Delete"); err != nil {
		return err
	}

	n, err := h.service.Delete(c.UserContext(), p.ID)
	if err != nil {
		return h.fail(c, err, "Delete", fmt.Sprintf("No User with ID %s found", p.ID))
	}

	return c.JSON(DeletedResponse{
		Envelope: handlerutil.OK(fmt.Sprintf("%d User with ID %s was deleted", n, p.ID)),
		Deleted:  n,
	})
}

// DeleteMany handles removing several users
// @Summary Delete users
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body []string true "User IDs"
// @Success 200 {object} DeletedResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /users/deleteMany [delete]
func (h *Handlers) DeleteMany(c *fiber.Ctx) error {
	var ids []string
	if err := handlerutil.ParseBody(c, &ids, "DeleteMany"); err != nil {
		return err
	}
	if err := handlerutil.ValidateVar(c, ids, "required,min=1,dive,mongodb", h.validator, "DeleteMany"); err != nil {
		return err
	}

	n, err := h.service.DeleteMany(c.UserContext(), ids)
	if err != nil {
		return h.fail(c, err, "DeleteMany", "No Users with those IDs found")
	}

	return c.JSON(DeletedResponse{
		Envelope: handlerutil.OK(fmt.Sprintf("%d Users with ID's %s were deleted", n, strings.Join(ids, ", "))),
		Deleted:  n,
	})
}

func (h *Handlers) fail(c *fiber.Ctx, err error, handlerName, notFoundMessage string) error {
	switch {
	case errors.Is(err, users.ErrInvalidCredentials):
		return httperr.BadRequest("Email or Password are incorrect!")
	case errors.Is(err, users.ErrDuplicate):
		return httperr.Fail(httperr.ErrConflict)
	case errors.Is(err, users.ErrInvalidID):
		return httperr.BadRequest("Invalid user ID")
	case errors.Is(err, users.ErrInvalidDateRange):
		return httperr.BadRequest("End date must not be before start date")
	case errors.Is(err, crypto.ErrPasswordTooLong):
		return httperr.BadRequest("Password must not exceed 72 bytes")
	}
	return handlerutil.HandleServiceError(c, err, handlerName, users.ErrUserNotFound, notFoundMessage)
}
