// Package format renders job values for people.
package format

import (
	"strconv"
)

const lakh = 100000

// Salary renders a yearly INR range in lakhs, e.g. "₹6.0L - ₹12.0L".
func Salary(minimum, maximum *float64) string {
	hasMin := minimum != nil && *minimum > 0
	hasMax := maximum != nil && *maximum > 0

	switch {
	case hasMin && hasMax:
		return inLakhs(*minimum) + " - " + inLakhs(*maximum)
	case hasMin:
		return inLakhs(*minimum) + "+"
	case hasMax:
		return "Up to " + inLakhs(*maximum)
	default:
		return "Not specified"
	}
}

// SalaryRange renders the range as "min-max" with empty sides for missing bounds.
func SalaryRange(minimum, maximum *float64) string {
	return plain(minimum) + "-" + plain(maximum)
}

func inLakhs(value float64) string {
	return "₹" + strconv.FormatFloat(value/lakh, 'f', 1, 64) + "L"
}

func plain(value *float64) string {
	if value == nil || *value == 0 {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
