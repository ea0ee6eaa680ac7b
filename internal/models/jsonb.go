package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	bytes, ok := normalizeJSONB(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// DayMeals holds one day of a weekly plan.
type DayMeals struct {
	Desayuno []string `json:"desayuno"`
	Comida   []string `json:"comida"`
	Cena     []string `json:"cena"`
}

// WeeklyMeals maps the seven day keys (lunes..domingo) to their meals.
// Stored as JSONB on meal plans.
type WeeklyMeals map[string]DayMeals

// Value implements the driver.Valuer interface
func (m WeeklyMeals) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *WeeklyMeals) Scan(value interface{}) error {
	if value == nil {
		*m = WeeklyMeals{}
		return nil
	}

	bytes, ok := normalizeJSONB(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, m)
}

// JSONBMap is a free-form JSONB document, used for the monitoring
// analysis result snapshot.
type JSONBMap map[string]interface{}

// Value implements the driver.Valuer interface. A nil map persists as
// NULL, which is how raw tracking rows are told apart from analyses.
func (m JSONBMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONBMap{}
		return nil
	}

	bytes, ok := normalizeJSONB(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, m)
}

func normalizeJSONB(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
