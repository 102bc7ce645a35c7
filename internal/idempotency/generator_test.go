package idempotency

import (
	"strings"
	"testing"
)

func TestGenerateKeyDeterministic(t *testing.T) {
	gen := NewGenerator()

	params := map[string]interface{}{
		"property_id": "prop_1",
		"period":      "2024-03",
		"kind":        "ELECTRICITY",
	}

	first := gen.GenerateKey(ScopePeriodBill, params)
	second := gen.GenerateKey(ScopePeriodBill, params)
	if first != second {
		t.Errorf("same params produced different keys: %s vs %s", first, second)
	}
	if !strings.HasPrefix(first, string(ScopePeriodBill)+"-") {
		t.Errorf("key %s missing scope prefix", first)
	}
}

func TestGenerateKeyVariesWithParams(t *testing.T) {
	gen := NewGenerator()

	base := gen.GenerateKey(ScopePeriodBill, map[string]interface{}{
		"property_id": "prop_1",
		"period":      "2024-03",
		"kind":        "ELECTRICITY",
	})
	otherKind := gen.GenerateKey(ScopePeriodBill, map[string]interface{}{
		"property_id": "prop_1",
		"period":      "2024-03",
		"kind":        "GAS",
	})
	otherScope := gen.GenerateKey(ScopeImportBill, map[string]interface{}{
		"property_id": "prop_1",
		"period":      "2024-03",
		"kind":        "ELECTRICITY",
	})

	if base == otherKind {
		t.Error("different kinds produced the same key")
	}
	if base == otherScope {
		t.Error("different scopes produced the same key")
	}
}

func TestValidateKey(t *testing.T) {
	gen := NewGenerator()

	params := map[string]interface{}{"property_id": "prop_1"}
	key := gen.GenerateKey(ScopeImportBill, params)

	if !gen.ValidateKey(ScopeImportBill, params, key) {
		t.Error("key should validate against its own params")
	}
	if gen.ValidateKey(ScopeImportBill, map[string]interface{}{"property_id": "prop_2"}, key) {
		t.Error("key should not validate against different params")
	}
}
