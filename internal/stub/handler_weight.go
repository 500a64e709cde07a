package stub

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"caltrack/internal/api"
)

type weightHandler struct {
	db *gorm.DB
}

func (h *weightHandler) fetch(uid string) ([]WeightEntry, error) {
	var entries []WeightEntry
	// Newest first; trend calculations rely on this ordering.
	err := h.db.Where("user_id = ?", uid).
		Order("date desc, created_at desc").Find(&entries).Error
	return entries, err
}

func (h *weightHandler) list(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	entries, err := h.fetch(uid)
	if err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	out := make([]api.WeightEntry, 0, len(entries))
	for i := range entries {
		out = append(out, entries[i].toAPI())
	}
	respond(w, http.StatusOK, out)
}

func (h *weightHandler) latest(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	entries, err := h.fetch(uid)
	if err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	if len(entries) == 0 {
		fail(w, http.StatusNotFound, "No weight entries found")
		return
	}
	respond(w, http.StatusOK, entries[0].toAPI())
}

func (h *weightHandler) trend(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	days, err := strconv.Atoi(chi.URLParam(r, "days"))
	if err != nil || days <= 0 {
		fail(w, http.StatusBadRequest, "Days must be a positive number")
		return
	}

	entries, err := h.fetch(uid)
	if err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days).Format("2006-01-02")
	trend := api.WeightTrend{Entries: []api.WeightEntry{}, Direction: "none"}
	for i := range entries {
		if entries[i].Date >= cutoff {
			trend.Entries = append(trend.Entries, entries[i].toAPI())
		}
	}
	if n := len(trend.Entries); n >= 2 {
		trend.Change = trend.Entries[0].Weight - trend.Entries[n-1].Weight
		switch {
		case trend.Change > 0:
			trend.Direction = "gain"
		case trend.Change < 0:
			trend.Direction = "loss"
		}
	}
	respond(w, http.StatusOK, trend)
}

func (h *weightHandler) create(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	var in api.CreateWeightInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var errs []api.ValidationError
	if in.Weight <= 0 {
		errs = append(errs, api.ValidationError{Msg: "Weight must be positive", Param: "weight", Location: "body"})
	}
	if in.Date == "" {
		errs = append(errs, api.ValidationError{Msg: "Date is required", Param: "date", Location: "body"})
	}
	if len(errs) > 0 {
		failValidation(w, "Validation failed", errs)
		return
	}

	e := WeightEntry{UserID: uid, Weight: in.Weight, Date: in.Date, Notes: in.Notes}
	if err := h.db.Create(&e).Error; err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	respond(w, http.StatusCreated, e.toAPI())
}

func (h *weightHandler) update(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	var e WeightEntry
	if err := h.db.Where("id = ? AND user_id = ?", chi.URLParam(r, "id"), uid).First(&e).Error; err != nil {
		fail(w, http.StatusNotFound, "Weight entry not found")
		return
	}

	var upd api.WeightUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if upd.Weight != nil {
		e.Weight = *upd.Weight
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.Notes != nil {
		e.Notes = *upd.Notes
	}

	if err := h.db.Save(&e).Error; err != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	respond(w, http.StatusOK, e.toAPI())
}

func (h *weightHandler) delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := userIDFromContext(r.Context())

	res := h.db.Where("id = ? AND user_id = ?", chi.URLParam(r, "id"), uid).Delete(&WeightEntry{})
	if res.Error != nil {
		fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	if res.RowsAffected == 0 {
		fail(w, http.StatusNotFound, "Weight entry not found")
		return
	}
	respond(w, http.StatusOK, nil)
}
