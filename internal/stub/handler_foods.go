package stub

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"caltrack/internal/api"
)

type foodHandler struct {
	db *gorm.DB
}

func (h *foodHandler) list(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	q := h.db.Where("user_id = ?", uid)
	if search := strings.TrimSpace(r.URL.Query().Get("search")); search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		q = q.Where("category = ?", category)
	}

	var foods []Food
	if err := q.Order("created_at desc").Find(&foods).Error; err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}

	out := make([]api.Food, 0, len(foods))
	for i := range foods {
		out = append(out, foods[i].toAPI())
	}
	respond(w, http.StatusOK, out)
}

func (h *foodHandler) get(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	var f Food
	if err := h.db.Where("id = ? AND user_id = ?", chi.URLParam(r, "id"), uid).First(&f).Error; err != nil {
		fail(w, http.StatusNotFound, "Food not found")
		return
	}
	respond(w, http.StatusOK, f.toAPI())
}

func (h *foodHandler) create(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	var in api.CreateFoodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var errs []api.ValidationError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, api.ValidationError{Msg: "Name is required", Param: "name", Location: "body"})
	}
	if in.Calories < 0 {
		errs = append(errs, api.ValidationError{Msg: "Calories cannot be negative", Param: "calories", Location: "body"})
	}
	if len(errs) > 0 {
		failValidation(w, "Validation failed", errs)
		return
	}

	f := Food{
		UserID:      uid,
		Name:        in.Name,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fats:        in.Fats,
		ServingSize: in.ServingSize,
		ServingUnit: in.ServingUnit,
		Category:    in.Category,
	}
	if err := h.db.Create(&f).Error; err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	respond(w, http.StatusCreated, f.toAPI())
}

func (h *foodHandler) update(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	var f Food
	if err := h.db.Where("id = ? AND user_id = ?", chi.URLParam(r, "id"), uid).First(&f).Error; err != nil {
		fail(w, http.StatusNotFound, "Food not found")
		return
	}

	var upd api.FoodUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if upd.Name != nil {
		f.Name = *upd.Name
	}
	if upd.Calories != nil {
		f.Calories = *upd.Calories
	}
	if upd.Protein != nil {
		f.Protein = *upd.Protein
	}
	if upd.Carbs != nil {
		f.Carbs = *upd.Carbs
	}
	if upd.Fats != nil {
		f.Fats = *upd.Fats
	}
	if upd.ServingSize != nil {
		f.ServingSize = *upd.ServingSize
	}
	if upd.ServingUnit != nil {
		f.ServingUnit = *upd.ServingUnit
	}
	if upd.Category != nil {
		f.Category = *upd.Category
	}

	if err := h.db.Save(&f).Error; err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	respond(w, http.StatusOK, f.toAPI())
}

func (h *foodHandler) delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	res := h.db.Where("id = ? AND user_id = ?", chi.URLParam(r, "id"), uid).Delete(&Food{})
	if res.Error != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	if res.RowsAffected == 0 {
		fail(w, http.StatusNotFound, "Food not found")
		return
	}
	respond(w, http.StatusOK, nil)
}
