package handler

import (
    "net/http" // HTTP status codes
    "strings"  // trimming of credentials
    "time"     // token expiry in responses

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/sakila-rental-api/internal/config" // auth configuration
    "github.com/iliyamo/sakila-rental-api/internal/utils"  // password verification and token issuing
)

// StaffRole is the role claim required on mutating routes.
const StaffRole = "STAFF"

// AuthHandler issues staff access tokens.  There is a single staff
// account whose bcrypt password hash comes from configuration.
type AuthHandler struct {
    Cfg config.AuthConfig
}

func NewAuthHandler(cfg config.AuthConfig) *AuthHandler {
    return &AuthHandler{Cfg: cfg}
}

// ----- DTOs -----

type loginReq struct {
    Username string `json:"username"`
    Password string `json:"password"`
}

type tokenPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}

type loginResp struct {
    Access tokenPart `json:"access"`
}

// Login verifies the staff credentials and returns an access token.
func (h *AuthHandler) Login(c echo.Context) error {
    if !h.Cfg.Enabled() {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "authentication disabled"})
    }
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Username = strings.TrimSpace(req.Username)
    if req.Username == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
    }
    // always run the bcrypt comparison so timing does not reveal the user name
    passOK := utils.VerifyPassword(h.Cfg.AdminPasswordHash, req.Password)
    if req.Username != h.Cfg.AdminUser || !passOK {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, req.Username, StaffRole, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    return c.JSON(http.StatusOK, loginResp{Access: tokenPart{Token: access.Token, Expires: access.Exp}})
}
