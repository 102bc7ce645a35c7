package dto

import (
	"github.com/inmovia/inmovia/internal/types"
	"github.com/shopspring/decimal"
)

// BalanceGroupResponse is one (kind, status) group of the balance
// breakdown, in first-appearance order of the underlying items
type BalanceGroupResponse struct {
	Kind   types.LineItemKind `json:"kind"`
	Status types.BillStatus   `json:"status"`
	Count  int                `json:"count"`
	Total  decimal.Decimal    `json:"total"`
}

// BalanceResponse is the outstanding balance of a subject. TotalOwed may
// be negative when the subject has paid in advance.
type BalanceResponse struct {
	SubjectID   string                 `json:"subject_id"`
	SubjectType string                 `json:"subject_type"`
	TotalOwed   decimal.Decimal        `json:"total_owed"`
	Breakdown   []BalanceGroupResponse `json:"breakdown"`
	Items       []*LineItemResponse    `json:"items"`
}
