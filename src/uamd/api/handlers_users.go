package api

import (
	"net/http"

	"github.com/bitswalk/uam/src/common/errors"
	"github.com/bitswalk/uam/src/uamd/auth"
	"github.com/gin-gonic/gin"
)

// HandleRegister registers a new user account
//
// @Summary      Register a user
// @Description  Creates a new account. The role is normalized to uppercase and must be ADMIN or USER. Administrators reference themselves as their own admin; a USER may carry a caller-supplied adminId.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Account details"
// @Success      201   {object}  RegisterResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /register [post]
func (a *API) handleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrInvalidJSON.ToResponse())
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, errors.ErrMissingRequiredField.WithMessage("Name, email and password are required").ToResponse())
		return
	}

	role, ok := auth.NormalizeRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, errors.ErrInvalidRole.ToResponse())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errors.NewResponse(errors.ErrInternal.WithCause(err)))
		return
	}

	user := auth.NewUser(req.Name, req.Email, passwordHash, role, req.AdminID)
	if err := a.repo.CreateUser(user); err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	log.Info("user registered", "id", user.ID, "role", user.Role)
	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

// HandleLogin authenticates a user and issues a bearer token
//
// @Summary      Log in
// @Description  Verifies the credentials and returns a signed bearer token valid for one hour
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  LoginResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /login [post]
func (a *API) handleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrInvalidJSON.ToResponse())
		return
	}

	user, err := a.repo.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusBadRequest, errors.ErrBadPassword.ToResponse())
		return
	}

	token, err := a.jwtService.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errors.NewResponse(errors.ErrInternal.WithCause(err)))
		return
	}

	log.Info("user logged in", "id", user.ID)
	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

// HandleLogout acknowledges a logout request.
// Tokens are stateless bearers, so there is nothing to revoke server-side;
// the client simply discards its token.
//
// @Summary      Log out
// @Description  Acknowledges the logout; the client discards its token
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       /logout [post]
func (a *API) handleLogout(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// HandleAdminCreate creates a user owned by the calling administrator
//
// @Summary      Create a user
// @Description  Creates a new account. USER accounts are owned by the calling administrator; ADMIN accounts reference themselves.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        body  body      CreateUserRequest  true  "Account details"
// @Success      201   {object}  RegisterResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /admin/create [post]
func (a *API) handleAdminCreate(c *gin.Context) {
	claims := GetClaimsFromContext(c)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrInvalidJSON.ToResponse())
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, errors.ErrMissingRequiredField.WithMessage("Name, email and password are required").ToResponse())
		return
	}

	role, ok := auth.NormalizeRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, errors.ErrInvalidRole.ToResponse())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errors.NewResponse(errors.ErrInternal.WithCause(err)))
		return
	}

	// USER accounts belong to their creator
	user := auth.NewUser(req.Name, req.Email, passwordHash, role, &claims.UserID)
	if err := a.repo.CreateUser(user); err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	log.Info("user created", "id", user.ID, "role", user.Role, "by", claims.UserID)
	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User created successfully",
		UserID:  user.ID,
	})
}

// HandleAdminUpdate updates a user's name and email
//
// @Summary      Update a user
// @Description  Updates name and email of a user within the caller's admin group
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      UpdateUserRequest  true  "Fields to update"
// @Success      200   {object}  UpdateUserResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /admin/update/{id} [put]
func (a *API) handleAdminUpdate(c *gin.Context) {
	claims := GetClaimsFromContext(c)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrInvalidJSON.ToResponse())
		return
	}

	user, err := a.repo.UpdateUserInGroup(c.Param("id"), claims.UserID, req.Name, req.Email)
	if err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	log.Info("user updated", "id", user.ID, "by", claims.UserID)
	c.JSON(http.StatusOK, UpdateUserResponse{
		Message: "User updated successfully",
		User:    user,
	})
}

// HandleAdminDelete deletes a user
//
// @Summary      Delete a user
// @Description  Deletes a user within the caller's admin group
// @Tags         Admin
// @Produce      json
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /admin/delete/{id} [delete]
func (a *API) handleAdminDelete(c *gin.Context) {
	claims := GetClaimsFromContext(c)

	id := c.Param("id")
	if err := a.repo.DeleteUserInGroup(id, claims.UserID); err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	log.Info("user deleted", "id", id, "by", claims.UserID)
	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}

// HandleAdminReadAll lists the users owned by the calling administrator
//
// @Summary      List users
// @Description  Lists all users in the caller's admin group as {id, name, email, role} projections
// @Tags         Admin
// @Produce      json
// @Success      200  {array}   UserSummary
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /admin/read [get]
func (a *API) handleAdminReadAll(c *gin.Context) {
	claims := GetClaimsFromContext(c)

	users, err := a.repo.ListUsersByAdmin(claims.UserID)
	if err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, UserSummary{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		})
	}

	c.JSON(http.StatusOK, summaries)
}

// HandleAdminReadOne returns a single user row
//
// @Summary      Get a user
// @Description  Returns the full stored row of a user within the caller's admin group
// @Tags         Admin
// @Produce      json
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  auth.User
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /admin/read/{id} [get]
func (a *API) handleAdminReadOne(c *gin.Context) {
	claims := GetClaimsFromContext(c)

	user, err := a.repo.GetUserInGroup(c.Param("id"), claims.UserID)
	if err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	c.JSON(http.StatusOK, user)
}

// HandleProfile returns the authenticated user's own row
//
// @Summary      Get own profile
// @Description  Returns the full stored row of the authenticated user
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  auth.User
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /profile [get]
func (a *API) handleProfile(c *gin.Context) {
	claims := GetClaimsFromContext(c)

	user, err := a.repo.GetUserByID(claims.UserID)
	if err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	c.JSON(http.StatusOK, user)
}
