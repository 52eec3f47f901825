package models

// Tables lists every model the database schema is migrated from.
func Tables() []any {
	return []any{&Product{}, &Cart{}, &Order{}, &OrderStep{}, &StepClaim{}}
}
