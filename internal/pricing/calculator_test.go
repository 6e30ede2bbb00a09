package pricing

import (
	"testing"
	"time"

	"carmart/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalculator() *Calculator {
	c := NewCalculator(config.DefaultValuation())
	// Pin the clock so expected values do not drift at a year boundary
	// while the suite runs.
	fixed := time.Date(time.Now().Year(), 6, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }
	return c
}

func TestCalculate_FullScenario(t *testing.T) {
	c := testCalculator()
	currentYear := c.now().Year()

	result, err := c.Calculate(Input{
		BasePrice: 50000,
		Mileage:   60000,
		Year:      currentYear - 5,
		Condition: "used",
		Features:  []string{"Navigation System", "Sunroof"},
		Make:      "BMW",
		Model:     "3 Series",
	})
	require.NoError(t, err)

	// 50000 * 0.95^2 = 45125, no mileage penalty (expected = 5*12000),
	// *0.75 = 33843.75, +3000 features, +5000 luxury = 41843.75
	assert.Equal(t, 41844, result.AdjustedPrice)
	require.Len(t, result.Factors, 4)
	assert.Equal(t, "age_depreciation", result.Factors[0].Factor)
	assert.InDelta(t, -4875, result.Factors[0].Adjustment, 0.01)
	assert.Equal(t, "condition", result.Factors[1].Factor)
	assert.InDelta(t, -12500, result.Factors[1].Adjustment, 0.01)
	assert.Equal(t, "premium_features", result.Factors[2].Factor)
	assert.InDelta(t, 3000, result.Factors[2].Adjustment, 0.01)
	assert.Equal(t, "luxury_brand", result.Factors[3].Factor)
	assert.InDelta(t, 5000, result.Factors[3].Adjustment, 0.01)
}

func TestCalculate_NoDepreciationWithinGracePeriod(t *testing.T) {
	c := testCalculator()
	currentYear := c.now().Year()

	for _, yearsOld := range []int{0, 1, 2, 3} {
		result, err := c.Calculate(Input{
			BasePrice: 30000,
			Mileage:   0,
			Year:      currentYear - yearsOld,
			Condition: "new",
		})
		require.NoError(t, err)
		for _, f := range result.Factors {
			assert.NotEqual(t, "age_depreciation", f.Factor, "vehicle aged %d years should not depreciate", yearsOld)
		}
	}
}

func TestCalculate_MileagePenalty(t *testing.T) {
	c := testCalculator()
	currentYear := c.now().Year()

	result, err := c.Calculate(Input{
		BasePrice: 20000,
		Mileage:   30000,
		Year:      currentYear - 2,
		Condition: "new",
	})
	require.NoError(t, err)

	// 6000 miles over the expected 24000 at $0.10/mile.
	require.Len(t, result.Factors, 1)
	assert.Equal(t, "excess_mileage", result.Factors[0].Factor)
	assert.InDelta(t, -600, result.Factors[0].Adjustment, 0.01)
	assert.Equal(t, 19400, result.AdjustedPrice)
}

func TestCalculate_FloorClamp(t *testing.T) {
	c := testCalculator()
	currentYear := c.now().Year()

	result, err := c.Calculate(Input{
		BasePrice: 1200,
		Mileage:   250000,
		Year:      currentYear - 20,
		Condition: "used",
	})
	require.NoError(t, err)
	assert.Equal(t, 1000, result.AdjustedPrice)
}

func TestCalculate_FloorHoldsForZeroBase(t *testing.T) {
	c := testCalculator()

	result, err := c.Calculate(Input{BasePrice: 0, Mileage: 0, Year: c.now().Year(), Condition: "new"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.AdjustedPrice, 1000)
}

func TestCalculate_Deterministic(t *testing.T) {
	c := testCalculator()
	in := Input{
		BasePrice: 42000,
		Mileage:   80000,
		Year:      c.now().Year() - 6,
		Condition: "certified",
		Features:  []string{"Leather Seats", "Heated Seats", "Tow Hitch"},
		Make:      "Lexus",
		Model:     "RX",
	}

	first, err := c.Calculate(in)
	require.NoError(t, err)
	second, err := c.Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, first.AdjustedPrice, second.AdjustedPrice)
	assert.Equal(t, first.Factors, second.Factors)
}

func TestCalculate_LuxuryMakeCaseInsensitive(t *testing.T) {
	c := testCalculator()

	result, err := c.Calculate(Input{
		BasePrice: 10000,
		Mileage:   0,
		Year:      c.now().Year(),
		Condition: "new",
		Make:      "bmw",
	})
	require.NoError(t, err)
	require.Len(t, result.Factors, 1)
	assert.Equal(t, "luxury_brand", result.Factors[0].Factor)
	assert.Equal(t, 11000, result.AdjustedPrice)
}

func TestCalculate_FeatureMatchesBySubstring(t *testing.T) {
	c := testCalculator()

	result, err := c.Calculate(Input{
		BasePrice: 15000,
		Mileage:   0,
		Year:      c.now().Year(),
		Condition: "new",
		Features:  []string{"NAVIGATION SYSTEM", "Panoramic Sunroof", "Cloth Seats"},
		Make:      "Honda",
	})
	require.NoError(t, err)
	require.Len(t, result.Factors, 1)
	assert.Equal(t, "premium_features", result.Factors[0].Factor)
	assert.InDelta(t, 3000, result.Factors[0].Adjustment, 0.01)
}

func TestCalculate_FutureModelYearCountsAsNew(t *testing.T) {
	c := testCalculator()

	result, err := c.Calculate(Input{
		BasePrice: 35000,
		Mileage:   10,
		Year:      c.now().Year() + 1,
		Condition: "new",
		Make:      "Toyota",
	})
	require.NoError(t, err)

	// Age clamps to zero: no depreciation, and 10 miles over an expected 0
	// is the only deduction.
	require.Len(t, result.Factors, 1)
	assert.Equal(t, "excess_mileage", result.Factors[0].Factor)
	assert.Equal(t, 34999, result.AdjustedPrice)
}

func TestCalculate_RejectsNegativeInput(t *testing.T) {
	c := testCalculator()

	_, err := c.Calculate(Input{BasePrice: -1, Year: c.now().Year()})
	assert.Error(t, err)

	_, err = c.Calculate(Input{BasePrice: 1000, Mileage: -5, Year: c.now().Year()})
	assert.Error(t, err)
}
