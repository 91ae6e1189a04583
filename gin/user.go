package gin

import (
	"fmt"

	"github.com/gin-gonic/gin"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
	"github.com/foladipo/docs-cabinet-cp2-sub000/access"
	"github.com/foladipo/docs-cabinet-cp2-sub000/auth"
	"github.com/foladipo/docs-cabinet-cp2-sub000/errors"
	"github.com/foladipo/docs-cabinet-cp2-sub000/pagination"
)

const (
	TagInvalidTargetUserID = "InvalidTargetUserIdError"
	TagTargetUserNotFound  = "TargetUserNotFoundError"
)

type UserHandler struct {
	Users         docscabinet.UserStore
	Tokens        *auth.EncodeDecoder
	Hasher        auth.PasswordHasher
	Defaults      pagination.Defaults
	Authenticator *Authenticator
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine) {
	authed := h.Authenticator.Authenticate

	router.POST("/api/users", JSONFormatter(h.SignUp))
	router.POST("/api/users/login", JSONFormatter(h.LogIn))
	router.GET("/api/users", JSONFormatter(authed(h.List)))
	router.GET("/api/users/:id", JSONFormatter(authed(h.Get)))
	router.PUT("/api/users/:id", JSONFormatter(authed(h.Update)))
	router.DELETE("/api/users/:id", JSONFormatter(authed(h.Delete)))
}

type signUpPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Login     string `json:"login"`
	Password  string `json:"password"`
}

func (h *UserHandler) SignUp(c *gin.Context) (interface{}, error) {
	var payload signUpPayload
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("could not decode user", errors.BadRequest(), errors.WithCause(err))
	}

	if payload.Login == "" || payload.Password == "" {
		return nil, errors.New("login and password are required", errors.BadRequest())
	}

	existing, err := h.Users.GetByLogin(payload.Login)
	if err != nil {
		return nil, errors.New("could not check login", errors.WithCause(err))
	} else if existing != nil {
		return nil, errors.New(
			fmt.Sprintf("login %q is already taken", payload.Login),
			errors.WithCode(409),
		)
	}

	hash, err := h.Hasher.Hash(payload.Password)
	if err != nil {
		return nil, errors.New("could not hash password", errors.WithCause(err))
	}

	user := docscabinet.User{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Login:        payload.Login,
		PasswordHash: hash,
		Tier:         docscabinet.TierRegular,
	}
	if err := h.Users.Insert(&user); err != nil {
		return nil, errors.New("could not create user", errors.WithCause(err))
	}

	token, err := h.Tokens.Encode(user)
	if err != nil {
		return nil, errors.New("could not issue token", errors.WithCause(err))
	}

	return gin.H{
		"message": "Signed up.",
		"token":   token,
		"users":   []docscabinet.User{user},
	}, nil
}

type logInPayload struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *UserHandler) LogIn(c *gin.Context) (interface{}, error) {
	var payload logInPayload
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("could not decode credentials", errors.BadRequest(), errors.WithCause(err))
	}

	user, err := h.Users.GetByLogin(payload.Login)
	if err != nil {
		return nil, errors.New("could not look up account", errors.WithCause(err))
	}

	// One message for both failure modes, on purpose.
	if user == nil || h.Hasher.Compare(user.PasswordHash, payload.Password) != nil {
		return nil, errors.New("invalid login or password", errors.Unauthorized())
	}

	token, err := h.Tokens.Encode(*user)
	if err != nil {
		return nil, errors.New("could not issue token", errors.WithCause(err))
	}

	return gin.H{
		"message": "Logged in.",
		"token":   token,
		"users":   []docscabinet.User{*user},
	}, nil
}

func (h *UserHandler) List(c *gin.Context) (interface{}, error) {
	limit, offset := paginationParams(c, h.Defaults)

	users, total, err := h.Users.FindAndCount(limit, offset)
	if err != nil {
		return nil, errors.New("could not list users", errors.WithCause(err))
	}

	page := pagination.Paginate(total, limit, offset)
	return gin.H{
		"message":    "Users found.",
		"page":       page.Page,
		"pageSize":   page.PageSize,
		"pageCount":  page.PageCount,
		"totalCount": page.TotalCount,
		"users":      users,
	}, nil
}

func (h *UserHandler) Get(c *gin.Context) (interface{}, error) {
	user, err := h.fetch(c)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"message": "User found.",
		"users":   []docscabinet.User{*user},
	}, nil
}

type updateUserPayload struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Login     *string `json:"login"`
	Password  *string `json:"password"`
}

func (h *UserHandler) Update(c *gin.Context) (interface{}, error) {
	caller, err := GetCaller(c)
	if err != nil {
		return nil, err
	}

	user, err := h.fetch(c)
	if err != nil {
		return nil, err
	}

	if !access.CanUpdateUser(caller, user) {
		return nil, access.Forbidden("you may not update this account")
	}

	var payload updateUserPayload
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("could not decode user", errors.BadRequest(), errors.WithCause(err))
	}

	if payload.FirstName != nil {
		user.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		user.LastName = *payload.LastName
	}
	if payload.Login != nil && *payload.Login != "" {
		user.Login = *payload.Login
	}
	if payload.Password != nil && *payload.Password != "" {
		hash, err := h.Hasher.Hash(*payload.Password)
		if err != nil {
			return nil, errors.New("could not hash password", errors.WithCause(err))
		}
		user.PasswordHash = hash
	}

	if err := h.Users.Update(user); err != nil {
		return nil, errors.New("could not update user", errors.WithCause(err))
	}

	return gin.H{
		"message": "User updated.",
		"users":   []docscabinet.User{*user},
	}, nil
}

func (h *UserHandler) Delete(c *gin.Context) (interface{}, error) {
	caller, err := GetCaller(c)
	if err != nil {
		return nil, err
	}

	user, err := h.fetch(c)
	if err != nil {
		return nil, err
	}

	if !access.CanDeleteUser(caller, user) {
		return nil, access.Forbidden("you may not delete this account")
	}

	// Outstanding credentials for this account die with it: verification
	// re-checks existence on every request.
	if _, err := h.Users.Delete(user.ID); err != nil {
		return nil, errors.New("could not delete user", errors.WithCause(err))
	}

	return gin.H{
		"message": fmt.Sprintf("User %d deleted.", user.ID),
	}, nil
}

// fetch resolves the target account: unparseable id first (400), then
// absence (404), authorization always after.
func (h *UserHandler) fetch(c *gin.Context) (*docscabinet.User, error) {
	id, err := targetID(c, "id", TagInvalidTargetUserID)
	if err != nil {
		return nil, err
	}

	user, err := h.Users.Get(id)
	if err != nil {
		return nil, errors.New("could not get user", errors.WithCause(err))
	} else if user == nil {
		return nil, errors.New(
			fmt.Sprintf("user %d not found", id),
			errors.NotFound(), errors.WithTag(TagTargetUserNotFound),
		)
	}

	return user, nil
}
