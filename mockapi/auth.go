package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/wishcowork/sitekit/core/auth"
	"github.com/wishcowork/sitekit/core/logger"
	"github.com/wishcowork/sitekit/pkg/token"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool      `json:"success"`
	User    auth.User `json:"user"`
	Token   string    `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email != s.adminEmail || req.Password != s.adminPassword {
		s.log.Info("login rejected", logger.Component("mockapi"), logger.UserID(req.Email))
		s.writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	user := auth.User{
		ID:     "1",
		Email:  req.Email,
		Name:   "Admin User",
		Role:   auth.RoleAdmin,
		Avatar: "https://ui-avatars.com/api/?name=Admin+User&background=6366f1&color=fff",
	}
	tok := token.Mint(user.ID, user.Email, string(user.Role), s.tokenTTL)

	s.writeJSON(w, http.StatusOK, loginResponse{Success: true, User: user, Token: tok})
}
