package stub

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"caltrack/internal/api"
	"caltrack/internal/nutrition"
)

type authHandler struct {
	db  *gorm.DB
	jwt *JWT
	log *zap.Logger
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *authHandler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	var errs []api.ValidationError
	if req.Email == "" {
		errs = append(errs, api.ValidationError{Msg: "Email is required", Param: "email", Location: "body"})
	}
	if len(req.Password) < 6 {
		errs = append(errs, api.ValidationError{Msg: "Password must be at least 6 characters", Param: "password", Location: "body"})
	}
	if len(errs) > 0 {
		failValidation(w, "Validation failed", errs)
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}

	u := User{
		Email:            req.Email,
		PasswordHash:     hash,
		Name:             req.Name,
		DailyCalorieGoal: nutrition.DefaultCalorieGoal,
		ProteinGoal:      nutrition.DefaultProteinGoal,
		CarbsGoal:        nutrition.DefaultCarbsGoal,
		FatsGoal:         nutrition.DefaultFatsGoal,
	}
	if err := h.db.Create(&u).Error; err != nil {
		fail(w, http.StatusConflict, "Email already in use")
		return
	}

	h.issue(w, &u, http.StatusCreated)
}

func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	var u User
	if err := h.db.Where("email = ?", req.Email).First(&u).Error; err != nil {
		fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !comparePassword(u.PasswordHash, req.Password) {
		fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.issue(w, &u, http.StatusOK)
}

func (h *authHandler) issue(w http.ResponseWriter, u *User, status int) {
	token, err := h.jwt.Sign(u.ID)
	if err != nil {
		h.log.Error("signing token", zap.Error(err))
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	respond(w, status, api.AuthResult{ID: u.ID, Name: u.Name, Email: u.Email, Token: token})
}
