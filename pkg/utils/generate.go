package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateOrderNumber returns SUN-YYYYMMDD-XXXXXXXX where the suffix is
// eight random upper-case hex digits.
func GenerateOrderNumber(now time.Time) (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generate order suffix: %w", err)
	}

	return fmt.Sprintf("SUN-%s-%s",
		now.UTC().Format("20060102"),
		strings.ToUpper(hex.EncodeToString(suffix)),
	), nil
}
