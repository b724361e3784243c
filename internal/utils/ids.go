package utils

import "github.com/google/uuid"

// Identifier prefixes for the persisted record kinds.
const (
	PrefixIncome       = "inc"
	PrefixExpense      = "exp"
	PrefixSavings      = "sav"
	PrefixLoan         = "loan"
	PrefixNotification = "ntf"
	PrefixUser         = "usr"
)

// NewID generates a kind-prefixed identifier, e.g. "inc_<uuid>".
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
