package schema

import "fmt"

// Label returns the human-readable tier name.
func (t Tier) Label() string {
	switch t {
	case TierExcellent:
		return "Excellent"
	case TierVeryGood:
		return "Very Good"
	case TierGood:
		return "Good"
	case TierModerate:
		return "Moderate"
	default:
		return "Low"
	}
}

// Marker returns the traffic-light glyph shown next to a tier.
func (t Tier) Marker() string {
	switch t {
	case TierExcellent, TierVeryGood:
		return "🟢"
	case TierGood:
		return "🟡"
	case TierModerate:
		return "🟠"
	default:
		return "🔴"
	}
}

// OriginLabel names the origin class of an origin score.
func OriginLabel(score float64) string {
	switch score {
	case 0:
		return "Local"
	case 50:
		return "Regional"
	case 100:
		return "Imported"
	default:
		return fmt.Sprintf("Mixed (%.0f)", score)
	}
}

// NovaLabel names a NOVA processing level.
func NovaLabel(level int) string {
	switch level {
	case 1:
		return "Natural"
	case 2:
		return "Processed"
	case 3:
		return "Highly processed"
	case 4:
		return "Ultra-processed"
	default:
		return fmt.Sprintf("Unknown (%d)", level)
	}
}

// IndicatorName returns the column heading for an indicator.
func IndicatorName(key IndicatorKey) string {
	switch key {
	case CarbonFootprint:
		return "CF_kgCO2eq_kg"
	case WaterFootprint:
		return "WF_L_kg"
	case LandUse:
		return "LU_m2_kg"
	case Origin:
		return "Origin_Score"
	case Waste:
		return "Waste_pct"
	case NovaLevel:
		return "NOVA"
	default:
		return string(key)
	}
}
