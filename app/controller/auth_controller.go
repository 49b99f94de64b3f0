package controller

import (
	"log"
	"net/http"
)

// AuthController reserves the auth endpoints. Authentication is not
// implemented yet; the routes exist so clients can detect the surface.
type AuthController struct{}

// NewAuthController creates a new AuthController
func NewAuthController() *AuthController {
	return &AuthController{}
}

// Register handles POST /api/auth/register
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Register: Received %s request to %s", r.Method, r.URL.Path)
	http.Error(w, "Not implemented", http.StatusNotImplemented)
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Login: Received %s request to %s", r.Method, r.URL.Path)
	http.Error(w, "Not implemented", http.StatusNotImplemented)
}

// Refresh handles POST /api/auth/refresh
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Refresh: Received %s request to %s", r.Method, r.URL.Path)
	http.Error(w, "Not implemented", http.StatusNotImplemented)
}

// Logout handles POST /api/auth/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Logout: Received %s request to %s", r.Method, r.URL.Path)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
