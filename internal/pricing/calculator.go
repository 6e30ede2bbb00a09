package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"carmart/internal/config"
)

// Input carries the vehicle attributes the calculator works from.
type Input struct {
	BasePrice float64  `json:"basePrice"`
	Mileage   int      `json:"mileage"`
	Year      int      `json:"year"`
	Condition string   `json:"condition"`
	Features  []string `json:"features"`
	Make      string   `json:"make"`
	Model     string   `json:"model"`
}

// Factor is one itemized adjustment contributing to the adjusted price.
type Factor struct {
	Factor      string  `json:"factor"`
	Adjustment  float64 `json:"adjustment"`
	Description string  `json:"description"`
}

// Result is the computed fair-market estimate with its factor breakdown.
// Factors appear in application order; steps that did not apply are absent.
type Result struct {
	AdjustedPrice int      `json:"adjustedPrice"`
	Factors       []Factor `json:"factors"`
}

// Calculator computes a fair-market price estimate from vehicle attributes.
// Calculate is deterministic for a fixed current year: identical input
// yields identical output, including factor order.
type Calculator struct {
	cfg config.ValuationConfig
	now func() time.Time
}

func NewCalculator(cfg config.ValuationConfig) *Calculator {
	return &Calculator{cfg: cfg, now: time.Now}
}

// Calculate runs the adjustment pipeline over the base price. Later steps
// compound on the already-adjusted price, so order matters. The only error
// conditions are negative base price or mileage; callers fall back to the
// list price when an error is returned.
func (c *Calculator) Calculate(in Input) (*Result, error) {
	if in.BasePrice < 0 {
		return nil, fmt.Errorf("base price must not be negative, got %.2f", in.BasePrice)
	}
	if in.Mileage < 0 {
		return nil, fmt.Errorf("mileage must not be negative, got %d", in.Mileage)
	}

	adjusted := in.BasePrice
	factors := []Factor{}

	age := c.now().Year() - in.Year
	if age < 0 {
		// Next-model-year listings count as new.
		age = 0
	}

	if age > c.cfg.DepreciationGraceYears {
		depreciated := adjusted * math.Pow(c.cfg.DepreciationRate, float64(age-c.cfg.DepreciationGraceYears))
		factors = append(factors, Factor{
			Factor:      "age_depreciation",
			Adjustment:  -(in.BasePrice - depreciated),
			Description: fmt.Sprintf("%d years beyond the %d-year grace period", age-c.cfg.DepreciationGraceYears, c.cfg.DepreciationGraceYears),
		})
		adjusted = depreciated
	}

	expectedMileage := age * c.cfg.ExpectedMilesPerYear
	if in.Mileage > expectedMileage {
		penalty := float64(in.Mileage-expectedMileage) * c.cfg.ExcessMileageRate
		factors = append(factors, Factor{
			Factor:      "excess_mileage",
			Adjustment:  -penalty,
			Description: fmt.Sprintf("%d miles over the expected %d", in.Mileage-expectedMileage, expectedMileage),
		})
		adjusted -= penalty
	}

	switch in.Condition {
	case "certified":
		adjusted *= c.cfg.CertifiedMultiplier
		factors = append(factors, Factor{
			Factor:      "condition",
			Adjustment:  -(1 - c.cfg.CertifiedMultiplier) * in.BasePrice,
			Description: "Certified pre-owned discount",
		})
	case "used":
		adjusted *= c.cfg.UsedMultiplier
		factors = append(factors, Factor{
			Factor:      "condition",
			Adjustment:  -(1 - c.cfg.UsedMultiplier) * in.BasePrice,
			Description: "Used vehicle discount",
		})
	}

	if count := c.countPremiumFeatures(in.Features); count > 0 {
		bonus := float64(count) * c.cfg.FeatureBonus
		factors = append(factors, Factor{
			Factor:      "premium_features",
			Adjustment:  bonus,
			Description: fmt.Sprintf("%d premium features", count),
		})
		adjusted += bonus
	}

	if c.isLuxuryMake(in.Make) {
		bonus := c.cfg.LuxuryBonusRate * in.BasePrice
		factors = append(factors, Factor{
			Factor:      "luxury_brand",
			Adjustment:  bonus,
			Description: fmt.Sprintf("%s is a luxury brand", in.Make),
		})
		adjusted += bonus
	}

	price := math.Round(adjusted)
	if price < c.cfg.MinimumPrice {
		price = c.cfg.MinimumPrice
	}

	return &Result{AdjustedPrice: int(price), Factors: factors}, nil
}

// countPremiumFeatures counts features whose text contains any premium
// feature name. A feature matching several names still counts once.
func (c *Calculator) countPremiumFeatures(features []string) int {
	count := 0
	for _, feature := range features {
		lowered := strings.ToLower(feature)
		for _, name := range c.cfg.PremiumFeatures {
			if strings.Contains(lowered, strings.ToLower(name)) {
				count++
				break
			}
		}
	}
	return count
}

func (c *Calculator) isLuxuryMake(make string) bool {
	for _, brand := range c.cfg.LuxuryMakes {
		if strings.EqualFold(make, brand) {
			return true
		}
	}
	return false
}
