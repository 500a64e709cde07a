package api

// Wire types for the calorie-tracker API. Field names follow the JSON the
// server emits; entity ids are opaque strings under "_id".

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealTypes in display order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

func (m MealType) Valid() bool {
	switch m {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

type User struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	CurrentWeight *float64 `json:"currentWeight,omitempty"`
	GoalWeight    *float64 `json:"goalWeight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Age           *int     `json:"age,omitempty"`
	Gender        string   `json:"gender,omitempty"`        // male, female, other
	ActivityLevel string   `json:"activityLevel,omitempty"` // sedentary .. very active

	DailyCalorieGoal float64 `json:"dailyCalorieGoal"`
	ProteinGoal      float64 `json:"proteinGoal"`
	CarbsGoal        float64 `json:"carbsGoal"`
	FatsGoal         float64 `json:"fatsGoal"`
}

// ProfileUpdate is a partial profile write; nil fields are left untouched
// by the server.
type ProfileUpdate struct {
	Name             *string  `json:"name,omitempty"`
	CurrentWeight    *float64 `json:"currentWeight,omitempty"`
	GoalWeight       *float64 `json:"goalWeight,omitempty"`
	Height           *float64 `json:"height,omitempty"`
	Age              *int     `json:"age,omitempty"`
	Gender           *string  `json:"gender,omitempty"`
	ActivityLevel    *string  `json:"activityLevel,omitempty"`
	DailyCalorieGoal *float64 `json:"dailyCalorieGoal,omitempty"`
	ProteinGoal      *float64 `json:"proteinGoal,omitempty"`
	CarbsGoal        *float64 `json:"carbsGoal,omitempty"`
	FatsGoal         *float64 `json:"fatsGoal,omitempty"`
}

type Food struct {
	ID          string  `json:"_id"`
	UserID      string  `json:"userId"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
	Category    string  `json:"category"`
	CreatedAt   string  `json:"createdAt"`
}

type CreateFoodInput struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
	Category    string  `json:"category,omitempty"`
}

type FoodUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Calories    *float64 `json:"calories,omitempty"`
	Protein     *float64 `json:"protein,omitempty"`
	Carbs       *float64 `json:"carbs,omitempty"`
	Fats        *float64 `json:"fats,omitempty"`
	ServingSize *float64 `json:"servingSize,omitempty"`
	ServingUnit *string  `json:"servingUnit,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// FoodLog carries macro totals denormalized by the server at create time
// (food x servings). They are never recomputed client-side; editing
// servings rescales from the log's own per-serving rate.
type FoodLog struct {
	ID       string   `json:"_id"`
	UserID   string   `json:"userId"`
	FoodID   string   `json:"foodId"`
	Date     string   `json:"date"` // YYYY-MM-DD
	MealType MealType `json:"mealType"`
	Servings float64  `json:"servings"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fats     float64  `json:"fats"`
	FoodName string   `json:"foodName"`
	Notes    string   `json:"notes,omitempty"`
}

type CreateFoodLogInput struct {
	FoodID   string   `json:"foodId"`
	Date     string   `json:"date"`
	MealType MealType `json:"mealType"`
	Servings float64  `json:"servings"`
	Notes    string   `json:"notes,omitempty"`
}

type FoodLogUpdate struct {
	Servings *float64  `json:"servings,omitempty"`
	MealType *MealType `json:"mealType,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
}

type MealSummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Count    int     `json:"count"`
}

type DailySummary struct {
	TotalCalories float64                 `json:"totalCalories"`
	TotalProtein  float64                 `json:"totalProtein"`
	TotalCarbs    float64                 `json:"totalCarbs"`
	TotalFats     float64                 `json:"totalFats"`
	MealBreakdown map[string]*MealSummary `json:"mealBreakdown"`
}

type DailyData struct {
	Logs    []FoodLog    `json:"logs"`
	Summary DailySummary `json:"summary"`
}

type WeightEntry struct {
	ID     string  `json:"_id"`
	UserID string  `json:"userId"`
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes,omitempty"`
}

type CreateWeightInput struct {
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes,omitempty"`
}

type WeightUpdate struct {
	Weight *float64 `json:"weight,omitempty"`
	Date   *string  `json:"date,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
}

// WeightTrend is the /weight/trend/:days response: entries inside the
// window (newest first) plus the net change across it.
type WeightTrend struct {
	Entries   []WeightEntry `json:"entries"`
	Change    float64       `json:"change"`
	Direction string        `json:"direction"` // gain, loss, none
}

// AuthResult is the data payload of /auth/login and /auth/register.
type AuthResult struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type TDEEResult struct {
	TDEE float64 `json:"tdee"`
}

type ValidationError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}
