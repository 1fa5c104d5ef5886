package utils

import "strconv"

// ParseInt parses a query value, returning defaultValue when it is empty or
// not a number, and clamping the result into [min, max].
func ParseInt(value string, defaultValue, min, max int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < min {
		return min
	}
	if max > 0 && result > max {
		return max
	}

	return result
}

// ParseBool parses an optional boolean query value.
func ParseBool(value string) (*bool, bool) {
	if value == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, false
	}
	return &b, true
}
