package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ValuationConfig holds the tuning knobs for the fair-market price
// calculator. Defaults match the production constants; a TOML file can
// override any of them.
type ValuationConfig struct {
	DepreciationRate       float64  `toml:"depreciation_rate"`        // Annual value retention after the grace period
	DepreciationGraceYears int      `toml:"depreciation_grace_years"` // Years before age depreciation kicks in
	ExpectedMilesPerYear   int      `toml:"expected_miles_per_year"`
	ExcessMileageRate      float64  `toml:"excess_mileage_rate"` // Dollars deducted per excess mile
	CertifiedMultiplier    float64  `toml:"certified_multiplier"`
	UsedMultiplier         float64  `toml:"used_multiplier"`
	FeatureBonus           float64  `toml:"feature_bonus"` // Dollars added per premium feature
	LuxuryBonusRate        float64  `toml:"luxury_bonus_rate"`
	MinimumPrice           float64  `toml:"minimum_price"`
	PremiumFeatures        []string `toml:"premium_features"`
	LuxuryMakes            []string `toml:"luxury_makes"`
}

// DefaultValuation returns the built-in calculator tuning.
func DefaultValuation() ValuationConfig {
	return ValuationConfig{
		DepreciationRate:       0.95,
		DepreciationGraceYears: 3,
		ExpectedMilesPerYear:   12000,
		ExcessMileageRate:      0.10,
		CertifiedMultiplier:    0.85,
		UsedMultiplier:         0.75,
		FeatureBonus:           1500,
		LuxuryBonusRate:        0.10,
		MinimumPrice:           1000,
		PremiumFeatures: []string{
			"navigation",
			"leather",
			"sunroof",
			"heated seats",
			"premium audio",
			"backup camera",
			"blind spot",
			"adaptive cruise",
			"apple carplay",
			"android auto",
		},
		LuxuryMakes: []string{
			"BMW",
			"Mercedes-Benz",
			"Audi",
			"Lexus",
			"Porsche",
			"Tesla",
			"Jaguar",
			"Land Rover",
			"Cadillac",
			"Genesis",
		},
	}
}

// LoadValuation reads a TOML valuation file over the defaults. A missing
// path is not an error; the defaults are returned unchanged.
func LoadValuation(path string) (ValuationConfig, error) {
	cfg := DefaultValuation()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode valuation config %s: %w", path, err)
	}
	return cfg, nil
}
