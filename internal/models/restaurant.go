package models

type Restaurant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SlugName   string `json:"slug_name"`
	Town       string `json:"town"`
	Phone      string `json:"phone"`
	Currency   string `json:"currency"`
	EngineMode string `json:"engine_mode"`
}
