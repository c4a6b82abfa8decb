package builder

import (
	"math"
	"strconv"
	"strings"
)

func displayOf(def Definition) string {
	if def.Display == "" {
		return DisplayNumber
	}
	return def.Display
}

// FormatStatValue renders the value with the decimals of the definition, pt-BR style.
// Percent values are scaled by 100. With sign, values too small to show render empty.
func FormatStatValue(value float64, def Definition, withSign bool) string {
	if !isFinite(value) {
		value = 0
	}

	display := displayOf(def)

	scale, unit, threshold := 1.0, "", 0.05
	switch display {
	case DisplayPercent:
		scale, unit = 100, "%"
	case DisplayAttackSpeed:
		threshold = 0.005
	}

	decimals := def.Decimals
	if display == DisplayAttackSpeed && decimals == 0 {
		decimals = 3
	}

	scaled := value * scale
	if !withSign {
		return formatNumber(scaled, decimals) + unit
	}

	if math.Abs(scaled) < threshold {
		return ""
	}
	sign := "+"
	if scaled < 0 {
		sign = "-"
	}
	return sign + formatNumber(math.Abs(scaled), decimals) + unit
}

// formatNumber groups thousands with dots and uses a comma as decimal separator.
// Ties round away from zero, 0.8125 with 3 decimals is "0,813".
func formatNumber(value float64, decimals int) string {
	raw := strconv.FormatFloat(roundHalfAway(value, decimals), 'f', decimals, 64)

	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	integer, fraction, _ := strings.Cut(raw, ".")

	var b strings.Builder
	if negative && strings.Trim(raw, "0.") != "" {
		b.WriteByte('-')
	}
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	if fraction != "" {
		b.WriteByte(',')
		b.WriteString(fraction)
	}
	return b.String()
}

func roundHalfAway(value float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	rounded := math.Round(value*pow) / pow
	if math.IsInf(rounded, 0) || math.IsNaN(rounded) {
		return value
	}
	return rounded
}
