package analyzer

import (
	"fmt"
	"strings"
)

// Strength is the ordinal bucket a password falls into by estimated crack time.
type Strength string

const (
	VeryWeak   Strength = "very-weak"
	Weak       Strength = "weak"
	Medium     Strength = "medium"
	Strong     Strength = "strong"
	VeryStrong Strength = "very-strong"
)

// Strengths lists every bucket from weakest to strongest.
var Strengths = []Strength{VeryWeak, Weak, Medium, Strong, VeryStrong}

// Rank returns 0 for VeryWeak through 4 for VeryStrong, or -1 for unknown values.
func (s Strength) Rank() int {
	for i, v := range Strengths {
		if v == s {
			return i
		}
	}
	return -1
}

// AtLeast reports whether s is as strong as min or stronger.
func (s Strength) AtLeast(min Strength) bool {
	return s.Rank() >= min.Rank()
}

// Label renders the bucket as a badge, e.g. "VERY STRONG".
func (s Strength) Label() string {
	return strings.ToUpper(strings.Replace(string(s), "-", " ", 1))
}

// ParseStrength accepts a bucket name in any case, with "-", "_" or " " separators.
func ParseStrength(s string) (Strength, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	for _, v := range Strengths {
		if string(v) == normalized {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown strength %q", s)
}

func classify(t TimeToCrack) Strength {
	switch {
	case t.Years >= 1000:
		return VeryStrong
	case t.Years >= 1:
		return Strong
	case t.Days >= 1:
		return Medium
	case t.Hours >= 1:
		return Weak
	default:
		return VeryWeak
	}
}
