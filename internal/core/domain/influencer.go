package domain

import (
	"fmt"
	"strings"
)

// Influencer is a promotable party with audience metrics. Influencers are
// global: any authenticated user may read or edit them. EngagementRate is
// kept as exact decimal text ("3.50") so values round-trip through the
// numeric(5,2) column without floating-point drift.
type Influencer struct {
	ID             int64
	Name           string
	FollowerCount  int64
	EngagementRate string
}

// NormalizeEngagementRate validates decimal text against the numeric(5,2)
// column and normalizes it to exactly two fraction digits ("3.5" becomes
// "3.50"). The value must be non-negative with at most three integer
// digits and two fraction digits.
func NormalizeEngagementRate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty rate")
	}
	if s[0] == '-' {
		return "", fmt.Errorf("rate must not be negative")
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return "", fmt.Errorf("malformed decimal %q", s)
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return "", fmt.Errorf("malformed decimal %q", s)
	}
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	if len(intPart) > 3 {
		return "", fmt.Errorf("rate out of range for numeric(5,2)")
	}
	if len(fracPart) > 2 {
		return "", fmt.Errorf("rate allows at most two fraction digits")
	}
	return intPart + "." + fracPart + strings.Repeat("0", 2-len(fracPart)), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
