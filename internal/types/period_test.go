package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillingPeriodValidate(t *testing.T) {
	assert.NoError(t, BillingPeriod("2024-03").Validate())
	assert.NoError(t, BillingPeriod("1999-12").Validate())

	assert.Error(t, BillingPeriod("2024-13").Validate())
	assert.Error(t, BillingPeriod("2024").Validate())
	assert.Error(t, BillingPeriod("03-2024").Validate())
	assert.Error(t, BillingPeriod("").Validate())
}

func TestBillingPeriodRejectsNonCanonicalForm(t *testing.T) {
	// "2024-1" would derive different line item ids than "2024-01"
	assert.Error(t, BillingPeriod("2024-1").Validate())
	assert.Error(t, BillingPeriod("2024-001").Validate())
}

func TestBillingPeriodLastDay(t *testing.T) {
	cases := map[BillingPeriod]int{
		"2024-01": 31,
		"2024-02": 29, // leap year
		"2023-02": 28,
		"2024-04": 30,
	}
	for period, day := range cases {
		last := period.LastDay()
		assert.Equal(t, day, last.Day(), "period %s", period)
		assert.Equal(t, string(period), last.Format("2006-01"))
	}
}

func TestNewBillingPeriod(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, BillingPeriod("2024-03"), NewBillingPeriod(ts))
}

func TestLineItemKindValidate(t *testing.T) {
	assert.NoError(t, LineItemKindElectricity.Validate())
	assert.NoError(t, LineItemKindTenantCredit.Validate())
	assert.Error(t, LineItemKind("PARKING").Validate())
}

func TestLineItemKindClassification(t *testing.T) {
	assert.True(t, LineItemKindElectricity.IsConsumption())
	assert.True(t, LineItemKindGas.IsConsumption())
	assert.True(t, LineItemKindWater.IsConsumption())
	assert.False(t, LineItemKindTaxes.IsConsumption())
	assert.False(t, LineItemKindRent.IsConsumption())

	assert.True(t, LineItemKindTenantCredit.IsCredit())
	assert.False(t, LineItemKindRent.IsCredit())
}
