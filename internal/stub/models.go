package stub

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"caltrack/internal/api"
)

type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string

	CurrentWeight *float64
	GoalWeight    *float64
	Height        *float64
	Age           *int
	Gender        string
	ActivityLevel string

	DailyCalorieGoal float64
	ProteinGoal      float64
	CarbsGoal        float64
	FatsGoal         float64

	CreatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Food struct {
	ID          string `gorm:"primaryKey"`
	UserID      string `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Calories    float64
	Protein     float64
	Carbs       float64
	Fats        float64
	ServingSize float64
	ServingUnit string
	Category    string
	CreatedAt   time.Time
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// FoodLog stores the macro totals denormalized at create time. Servings
// edits rescale from the stored totals, so a later edit to the Food row
// never changes an existing log.
type FoodLog struct {
	ID       string `gorm:"primaryKey"`
	UserID   string `gorm:"index;not null"`
	FoodID   string `gorm:"index;not null"`
	Date     string `gorm:"index;not null"` // YYYY-MM-DD
	MealType string `gorm:"not null"`
	Servings float64
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	FoodName string
	Notes    string

	CreatedAt time.Time
}

func (l *FoodLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

type WeightEntry struct {
	ID     string `gorm:"primaryKey"`
	UserID string `gorm:"index;not null"`
	Weight float64
	Date   string `gorm:"index;not null"`
	Notes  string

	CreatedAt time.Time
}

func (e *WeightEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

func Connect(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := gdb.AutoMigrate(&User{}, &Food{}, &FoodLog{}, &WeightEntry{}); err != nil {
		return nil, err
	}
	return gdb, nil
}

// ---- wire conversions ----

func (u *User) toAPI() api.User {
	return api.User{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		CurrentWeight:    u.CurrentWeight,
		GoalWeight:       u.GoalWeight,
		Height:           u.Height,
		Age:              u.Age,
		Gender:           u.Gender,
		ActivityLevel:    u.ActivityLevel,
		DailyCalorieGoal: u.DailyCalorieGoal,
		ProteinGoal:      u.ProteinGoal,
		CarbsGoal:        u.CarbsGoal,
		FatsGoal:         u.FatsGoal,
	}
}

func (f *Food) toAPI() api.Food {
	return api.Food{
		ID:          f.ID,
		UserID:      f.UserID,
		Name:        f.Name,
		Calories:    f.Calories,
		Protein:     f.Protein,
		Carbs:       f.Carbs,
		Fats:        f.Fats,
		ServingSize: f.ServingSize,
		ServingUnit: f.ServingUnit,
		Category:    f.Category,
		CreatedAt:   f.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (l *FoodLog) toAPI() api.FoodLog {
	return api.FoodLog{
		ID:       l.ID,
		UserID:   l.UserID,
		FoodID:   l.FoodID,
		Date:     l.Date,
		MealType: api.MealType(l.MealType),
		Servings: l.Servings,
		Calories: l.Calories,
		Protein:  l.Protein,
		Carbs:    l.Carbs,
		Fats:     l.Fats,
		FoodName: l.FoodName,
		Notes:    l.Notes,
	}
}

func (e *WeightEntry) toAPI() api.WeightEntry {
	return api.WeightEntry{
		ID:     e.ID,
		UserID: e.UserID,
		Weight: e.Weight,
		Date:   e.Date,
		Notes:  e.Notes,
	}
}
