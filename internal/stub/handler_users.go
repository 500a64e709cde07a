package stub

import (
	"encoding/json"
	"math"
	"net/http"

	"gorm.io/gorm"

	"caltrack/internal/api"
)

type userHandler struct {
	db *gorm.DB
}

func (h *userHandler) current(r *http.Request) (*User, bool) {
	uid, ok := userIDFromContext(r.Context())
	if !ok {
		return nil, false
	}
	var u User
	if err := h.db.First(&u, "id = ?", uid).Error; err != nil {
		return nil, false
	}
	return &u, true
}

func (h *userHandler) profile(w http.ResponseWriter, r *http.Request) {
	u, ok := h.current(r)
	if !ok {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	respond(w, http.StatusOK, u.toAPI())
}

func (h *userHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := h.current(r)
	if !ok {
		fail(w, http.StatusNotFound, "User not found")
		return
	}

	var upd api.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.CurrentWeight != nil {
		u.CurrentWeight = upd.CurrentWeight
	}
	if upd.GoalWeight != nil {
		u.GoalWeight = upd.GoalWeight
	}
	if upd.Height != nil {
		u.Height = upd.Height
	}
	if upd.Age != nil {
		u.Age = upd.Age
	}
	if upd.Gender != nil {
		u.Gender = *upd.Gender
	}
	if upd.ActivityLevel != nil {
		u.ActivityLevel = *upd.ActivityLevel
	}
	if upd.DailyCalorieGoal != nil {
		u.DailyCalorieGoal = *upd.DailyCalorieGoal
	}
	if upd.ProteinGoal != nil {
		u.ProteinGoal = *upd.ProteinGoal
	}
	if upd.CarbsGoal != nil {
		u.CarbsGoal = *upd.CarbsGoal
	}
	if upd.FatsGoal != nil {
		u.FatsGoal = *upd.FatsGoal
	}

	if err := h.db.Save(u).Error; err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	respond(w, http.StatusOK, u.toAPI())
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very active": 1.9,
}

// calculateTDEE runs Mifflin-St Jeor over the stored body metrics and
// scales by activity level. Missing metrics are a validation failure.
func (h *userHandler) calculateTDEE(w http.ResponseWriter, r *http.Request) {
	u, ok := h.current(r)
	if !ok {
		fail(w, http.StatusNotFound, "User not found")
		return
	}

	var errs []api.ValidationError
	need := func(ok bool, param string) {
		if !ok {
			errs = append(errs, api.ValidationError{Msg: param + " is required", Param: param, Location: "profile"})
		}
	}
	need(u.CurrentWeight != nil, "currentWeight")
	need(u.Height != nil, "height")
	need(u.Age != nil, "age")
	need(u.Gender != "", "gender")
	_, haveActivity := activityMultipliers[u.ActivityLevel]
	need(haveActivity, "activityLevel")
	if len(errs) > 0 {
		failValidation(w, "Missing required profile fields for TDEE calculation", errs)
		return
	}

	bmr := 10**u.CurrentWeight + 6.25**u.Height - 5*float64(*u.Age)
	switch u.Gender {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		bmr -= 78
	}

	tdee := math.Round(bmr * activityMultipliers[u.ActivityLevel])
	respond(w, http.StatusOK, api.TDEEResult{TDEE: tdee})
}
