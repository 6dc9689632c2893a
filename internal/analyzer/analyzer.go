// Package analyzer estimates how long an offline brute-force attack needs to
// exhaust a password's keyspace and turns that into a strength bucket and
// advice. The model only looks at which character classes appear; it knows
// nothing about dictionaries or patterns.
package analyzer

import (
	"math"
	"strings"
	"unicode/utf8"
)

// AttemptsPerSecond models a modern offline GPU attack.
const AttemptsPerSecond = 1_000_000_000

// Detection symbols. This set is wider than the one the generator draws from.
const detectedSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?`~"

const (
	lowercaseWeight = 26
	uppercaseWeight = 26
	digitWeight     = 10
	symbolWeight    = 32

	recommendedLength = 12
)

const (
	RecommendEnterPassword = "Enter a password to analyze"
	RecommendLength        = "Increase password length to at least 12 characters"
	RecommendLowercase     = "Add lowercase letters (a-z)"
	RecommendUppercase     = "Add uppercase letters (A-Z)"
	RecommendDigits        = "Add numbers (0-9)"
	RecommendSymbols       = "Add special characters (!@#$%^&*)"
	RecommendNone          = "Excellent password strength!"
)

// CharacterSets records which character classes occur in a password.
type CharacterSets struct {
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
}

// Size returns the brute-force alphabet size implied by the present classes.
func (c CharacterSets) Size() int {
	size := 0
	if c.Lowercase {
		size += lowercaseWeight
	}
	if c.Uppercase {
		size += uppercaseWeight
	}
	if c.Digits {
		size += digitWeight
	}
	if c.Symbols {
		size += symbolWeight
	}
	return size
}

// TimeToCrack is the exhaustive-search time expressed in several units.
type TimeToCrack struct {
	Seconds float64 `json:"seconds"`
	Minutes float64 `json:"minutes"`
	Hours   float64 `json:"hours"`
	Days    float64 `json:"days"`
	Years   float64 `json:"years"`
}

// Analysis is the result of analyzing a single password.
type Analysis struct {
	CharacterSets     CharacterSets `json:"characterSets"`
	TotalCombinations float64       `json:"totalCombinations"`
	AttemptsPerSecond float64       `json:"attemptsPerSecond"`
	TimeToCrack       TimeToCrack   `json:"timeToCrack"`
	Strength          Strength      `json:"strength"`
	Recommendations   []string      `json:"recommendations"`
}

// Analyze computes the brute-force analysis of password. It is pure and safe
// for concurrent use; the empty string yields a fixed placeholder result.
func Analyze(password string) Analysis {
	if password == "" {
		return Analysis{
			AttemptsPerSecond: AttemptsPerSecond,
			Strength:          VeryWeak,
			Recommendations:   []string{RecommendEnterPassword},
		}
	}

	sets := DetectCharacterSets(password)
	length := utf8.RuneCountInString(password)

	combinations := math.Pow(float64(sets.Size()), float64(length))
	ttc := crackTime(combinations)

	return Analysis{
		CharacterSets:     sets,
		TotalCombinations: combinations,
		AttemptsPerSecond: AttemptsPerSecond,
		TimeToCrack:       ttc,
		Strength:          classify(ttc),
		Recommendations:   recommend(sets, length),
	}
}

// DetectCharacterSets reports which classes occur in password.
func DetectCharacterSets(password string) CharacterSets {
	var sets CharacterSets
	for _, r := range password {
		switch {
		case isLower(r):
			sets.Lowercase = true
		case isUpper(r):
			sets.Uppercase = true
		case isDigit(r):
			sets.Digits = true
		case isSymbol(r):
			sets.Symbols = true
		}
	}
	return sets
}

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSymbol(r rune) bool {
	return r < utf8.RuneSelf && strings.ContainsRune(detectedSymbols, r)
}

func crackTime(combinations float64) TimeToCrack {
	seconds := combinations / AttemptsPerSecond
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	return TimeToCrack{
		Seconds: seconds,
		Minutes: minutes,
		Hours:   hours,
		Days:    days,
		Years:   days / 365.25,
	}
}

// recommend is independent of the strength bucket, so a strong password may
// still be told to grow longer.
func recommend(sets CharacterSets, length int) []string {
	var out []string
	if length < recommendedLength {
		out = append(out, RecommendLength)
	}
	if !sets.Lowercase {
		out = append(out, RecommendLowercase)
	}
	if !sets.Uppercase {
		out = append(out, RecommendUppercase)
	}
	if !sets.Digits {
		out = append(out, RecommendDigits)
	}
	if !sets.Symbols {
		out = append(out, RecommendSymbols)
	}
	if len(out) == 0 {
		out = append(out, RecommendNone)
	}
	return out
}
