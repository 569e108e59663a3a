package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"ecommerce-api/internal/apperr"
	"ecommerce-api/internal/auth"
)

type AuthHandlers struct {
	Svc *auth.Service
	Log zerolog.Logger
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Name == "" || req.Email == "" || req.Password == "" {
		respondErr(w, r, h.Log, apperr.ErrInvalidRequest)
		return
	}
	userID, err := h.Svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusCreated, "auth.registered", map[string]string{"user_id": userID})
}

type verifyEmailReq struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

func (h *AuthHandlers) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Email == "" || req.Otp == "" {
		respondErr(w, r, h.Log, apperr.ErrInvalidRequest)
		return
	}
	if err := h.Svc.VerifyEmail(r.Context(), req.Email, req.Otp); err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "auth.verified", nil)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Email == "" || req.Password == "" {
		respondErr(w, r, h.Log, apperr.ErrInvalidRequest)
		return
	}
	token, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "auth.logged_in", map[string]string{"token": token})
}

func (h *AuthHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := CallerIdentity(r)
	if !ok {
		respondErr(w, r, h.Log, apperr.ErrInvalidToken)
		return
	}
	profile, err := h.Svc.GetProfile(r.Context(), id.UserID)
	if err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "auth.profile", profile)
}

type forgotPasswordReq struct {
	Email string `json:"email"`
}

func (h *AuthHandlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondErr(w, r, h.Log, apperr.ErrInvalidRequest)
		return
	}
	if err := h.Svc.ForgotPassword(r.Context(), req.Email); err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "auth.otp_sent", nil)
}

type resetPasswordReq struct {
	Email       string `json:"email"`
	Otp         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Email == "" || req.Otp == "" || req.NewPassword == "" {
		respondErr(w, r, h.Log, apperr.ErrInvalidRequest)
		return
	}
	if err := h.Svc.ResetPassword(r.Context(), req.Email, req.Otp, req.NewPassword); err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "auth.password_reset", nil)
}
