package stub

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"caltrack/internal/api"
)

type logHandler struct {
	db *gorm.DB
}

func (h *logHandler) daily(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())
	date := chi.URLParam(r, "date")

	var logs []FoodLog
	if err := h.db.Where("user_id = ? AND date = ?", uid, date).
		Order("created_at asc").Find(&logs).Error; err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}

	out := api.DailyData{
		Logs: make([]api.FoodLog, 0, len(logs)),
		Summary: api.DailySummary{
			MealBreakdown: map[string]*api.MealSummary{},
		},
	}
	for _, mt := range api.MealTypes {
		out.Summary.MealBreakdown[string(mt)] = &api.MealSummary{}
	}
	for i := range logs {
		l := logs[i].toAPI()
		out.Logs = append(out.Logs, l)
		out.Summary.TotalCalories += l.Calories
		out.Summary.TotalProtein += l.Protein
		out.Summary.TotalCarbs += l.Carbs
		out.Summary.TotalFats += l.Fats
		if ms, ok := out.Summary.MealBreakdown[string(l.MealType)]; ok {
			ms.Calories += l.Calories
			ms.Protein += l.Protein
			ms.Carbs += l.Carbs
			ms.Fats += l.Fats
			ms.Count++
		}
	}
	respond(w, http.StatusOK, out)
}

func (h *logHandler) create(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	var in api.CreateFoodLogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var errs []api.ValidationError
	if in.Date == "" {
		errs = append(errs, api.ValidationError{Msg: "Date is required", Param: "date", Location: "body"})
	}
	if !in.MealType.Valid() {
		errs = append(errs, api.ValidationError{Msg: "Meal type must be breakfast, lunch, dinner or snack", Param: "mealType", Location: "body"})
	}
	if in.Servings <= 0 {
		errs = append(errs, api.ValidationError{Msg: "Servings must be positive", Param: "servings", Location: "body"})
	}
	if len(errs) > 0 {
		failValidation(w, "Validation failed", errs)
		return
	}

	var f Food
	if err := h.db.Where("id = ? AND user_id = ?", in.FoodID, uid).First(&f).Error; err != nil {
		fail(w, http.StatusNotFound, "Food not found")
		return
	}

	// Denormalize totals from the food at this moment. From here on the
	// log owns its macro content; food edits do not reach back into it.
	l := FoodLog{
		UserID:   uid,
		FoodID:   f.ID,
		Date:     in.Date,
		MealType: string(in.MealType),
		Servings: in.Servings,
		Calories: f.Calories * in.Servings,
		Protein:  f.Protein * in.Servings,
		Carbs:    f.Carbs * in.Servings,
		Fats:     f.Fats * in.Servings,
		FoodName: f.Name,
		Notes:    in.Notes,
	}
	if err := h.db.Create(&l).Error; err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	respond(w, http.StatusCreated, l.toAPI())
}

func (h *logHandler) update(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	var l FoodLog
	if err := h.db.Where("id = ? AND user_id = ?", chi.URLParam(r, "id"), uid).First(&l).Error; err != nil {
		fail(w, http.StatusNotFound, "Log not found")
		return
	}

	var upd api.FoodLogUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if upd.Servings != nil {
		if *upd.Servings <= 0 {
			failValidation(w, "Validation failed", []api.ValidationError{
				{Msg: "Servings must be positive", Param: "servings", Location: "body"},
			})
			return
		}
		// Rescale from this log's own per-serving rate, not from the
		// live food record.
		rate := l.Servings
		l.Calories = l.Calories / rate * *upd.Servings
		l.Protein = l.Protein / rate * *upd.Servings
		l.Carbs = l.Carbs / rate * *upd.Servings
		l.Fats = l.Fats / rate * *upd.Servings
		l.Servings = *upd.Servings
	}
	if upd.MealType != nil {
		if !upd.MealType.Valid() {
			failValidation(w, "Validation failed", []api.ValidationError{
				{Msg: "Meal type must be breakfast, lunch, dinner or snack", Param: "mealType", Location: "body"},
			})
			return
		}
		l.MealType = string(*upd.MealType)
	}
	if upd.Notes != nil {
		l.Notes = *upd.Notes
	}

	if err := h.db.Save(&l).Error; err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	respond(w, http.StatusOK, l.toAPI())
}

func (h *logHandler) delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	res := h.db.Where("id = ? AND user_id = ?", chi.URLParam(r, "id"), uid).Delete(&FoodLog{})
	if res.Error != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	if res.RowsAffected == 0 {
		fail(w, http.StatusNotFound, "Log not found")
		return
	}
	respond(w, http.StatusOK, nil)
}
