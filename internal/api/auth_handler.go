package api

import (
	"net/http"
	"time"

	"stormfins/club-app/internal/domain"
	"stormfins/club-app/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// AuthHandler serves login, logout and the roster self-service flows
// (captain registration, swimmer activation).
type AuthHandler struct {
	store         *store.Store
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(st *store.Store, jwtSecret string, jwtExpiration time.Duration) *AuthHandler {
	if jwtExpiration <= 0 {
		jwtExpiration = 12 * time.Hour
	}
	return &AuthHandler{store: st, jwtSecret: jwtSecret, jwtExpiration: jwtExpiration}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Name     string      `json:"name" binding:"required"`
	Role     domain.Role `json:"role" binding:"required,oneof=Captain Player"`
	PIN      string      `json:"pin"`      // captains only
	Password string      `json:"password" binding:"required"`
}

// UserResponse excludes the stored credentials.
type UserResponse struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Role     domain.Role  `json:"role"`
	IsActive bool         `json:"isActive"`
	Age      int          `json:"age"`
	Avatar   string       `json:"avatar"`
	Stats    domain.Stats `json:"stats"`
	Points   int          `json:"points"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type RegisterCaptainRequest struct {
	Name     string `json:"name" binding:"required"`
	PIN      string `json:"pin" binding:"required,len=4,numeric"`
	Password string `json:"password" binding:"required,min=6"`
}

type ActivateSwimmerRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --- Handler Methods ---

// Login authenticates against the store and issues a JWT mirroring the
// store session. Captains present name+pin+password, players name+password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var ok bool
	switch req.Role {
	case domain.RoleCaptain:
		ok = h.store.Login(req.Name, req.PIN, domain.RoleCaptain, req.Password)
	case domain.RolePlayer:
		ok = h.store.Login(req.Name, req.Password, domain.RolePlayer, "")
	}
	if !ok {
		// The store reports only success or failure; no reason leaks out.
		abortWithError(c, http.StatusUnauthorized, "Login failed")
		return
	}

	user := h.store.CurrentUser()
	token, err := h.generateJWT(user)
	if err != nil {
		h.store.Logout()
		abortWithError(c, http.StatusInternalServerError, "Could not process login")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: MapUserToResponse(*user)})
}

// Logout clears the store session.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout()
	c.Status(http.StatusNoContent)
}

// RegisterCaptain creates a new active captain account.
func (h *AuthHandler) RegisterCaptain(c *gin.Context) {
	var req RegisterCaptainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !h.store.CreateCaptain(req.Name, req.PIN, req.Password) {
		abortWithError(c, http.StatusConflict, "A user with this name already exists")
		return
	}
	c.Status(http.StatusCreated)
}

// ActivateSwimmer performs the one-time activation of an inactive player.
func (h *AuthHandler) ActivateSwimmer(c *gin.Context) {
	var req ActivateSwimmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !h.store.ActivateSwimmer(req.Name, req.Password) {
		abortWithError(c, http.StatusNotFound, "No inactive swimmer with this name")
		return
	}
	c.Status(http.StatusOK)
}

// generateJWT creates a token carrying the user's id and role.
func (h *AuthHandler) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(h.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "club-app",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

// MapUserToResponse converts a domain User to a UserResponse DTO, dropping
// the plaintext credentials.
func MapUserToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Role:     user.Role,
		IsActive: user.IsActive,
		Age:      user.Age,
		Avatar:   user.Avatar,
		Stats:    user.Stats,
		Points:   user.Points,
	}
}
