package models

import (
	"encoding/json"
	"time"
)

// Direction is the income/expense classification of a transaction.
// It is never persisted: the sign of Amount is the sole discriminator.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// Transaction represents a dated monetary transaction owned by a user.
// Amount is in minor currency units; a non-negative amount is income,
// a negative amount is an expense.
type Transaction struct {
	Base
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	Title    string    `gorm:"not null" json:"title"`
	Amount   int64     `gorm:"type:bigint;not null" json:"amount"`
	Category string    `gorm:"not null" json:"category"`
	Date     time.Time `gorm:"not null" json:"date"`
}

// Direction derives the transaction's classification from the sign of
// Amount. Zero counts as income; there is no third state.
func (t *Transaction) Direction() Direction {
	if t.Amount >= 0 {
		return DirectionIncome
	}
	return DirectionExpense
}

// MarshalJSON includes the derived direction as a "type" field so clients
// never have to reimplement the sign rule.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type alias Transaction
	return json.Marshal(struct {
		alias
		Type Direction `json:"type"`
	}{
		alias: alias(t),
		Type:  t.Direction(),
	})
}

// SuggestedCategories is the fixed set offered at creation time.
// Category remains free-form text; this list is advisory only.
var SuggestedCategories = []string{
	"Salary",
	"Freelance",
	"Investment",
	"Grocery",
	"Rent",
	"Utilities",
	"Entertainment",
	"Transportation",
	"Healthcare",
	"Other",
}
