package types

import (
	"fmt"

	"github.com/samber/lo"
)

// LineItemKind represents the kind of a billing line item
type LineItemKind string

const (
	LineItemKindElectricity   LineItemKind = "ELECTRICITY"
	LineItemKindGas           LineItemKind = "GAS"
	LineItemKindWater         LineItemKind = "WATER"
	LineItemKindTaxes         LineItemKind = "TAXES"
	LineItemKindRent          LineItemKind = "RENT"
	LineItemKindManagementFee LineItemKind = "MANAGEMENT_FEE"
	LineItemKindTenantCredit  LineItemKind = "TENANT_CREDIT"
)

func (k LineItemKind) String() string {
	return string(k)
}

func (k LineItemKind) Validate() error {
	allowed := []LineItemKind{
		LineItemKindElectricity,
		LineItemKindGas,
		LineItemKindWater,
		LineItemKindTaxes,
		LineItemKindRent,
		LineItemKindManagementFee,
		LineItemKindTenantCredit,
	}
	if !lo.Contains(allowed, k) {
		return fmt.Errorf("invalid line item kind: %s", k)
	}
	return nil
}

// IsConsumption returns true for kinds whose amount is derived from a
// metered usage quantity and a per-unit rate.
func (k LineItemKind) IsConsumption() bool {
	return k == LineItemKindElectricity || k == LineItemKindGas || k == LineItemKindWater
}

// IsCredit returns true for kinds that represent money received rather
// than money owed.
func (k LineItemKind) IsCredit() bool {
	return k == LineItemKindTenantCredit
}

// PlaceholderPrefix returns the token prefix used when a property has no
// stored contract identifier for the given kind.
func (k LineItemKind) PlaceholderPrefix() string {
	switch k {
	case LineItemKindElectricity:
		return "ELEC"
	case LineItemKindGas:
		return "GAS"
	case LineItemKindWater:
		return "WATER"
	case LineItemKindTaxes:
		return "MUN"
	default:
		return "REF"
	}
}

// BillStatus represents the payment status of a billing line item
type BillStatus string

const (
	BillStatusPending BillStatus = "PENDING"
	BillStatusPaid    BillStatus = "PAID"
)

func (s BillStatus) String() string {
	return string(s)
}

func (s BillStatus) Validate() error {
	allowed := []BillStatus{
		BillStatusPending,
		BillStatusPaid,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid bill status: %s", s)
	}
	return nil
}
