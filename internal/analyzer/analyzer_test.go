package analyzer

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEmpty(t *testing.T) {
	want := Analysis{
		CharacterSets:     CharacterSets{},
		TotalCombinations: 0,
		AttemptsPerSecond: 1e9,
		TimeToCrack:       TimeToCrack{},
		Strength:          VeryWeak,
		Recommendations:   []string{"Enter a password to analyze"},
	}

	assert.Equal(t, want, Analyze(""))
}

func TestAnalyzeTwelveLowercase(t *testing.T) {
	a := Analyze("aaaaaaaaaaaa")

	assert.Equal(t, CharacterSets{Lowercase: true}, a.CharacterSets)
	assert.Equal(t, math.Pow(26, 12), a.TotalCombinations)
	assert.InDelta(t, 9.54e16, a.TotalCombinations, 0.01e16)
	assert.InDelta(t, 9.54e7, a.TimeToCrack.Seconds, 0.01e7)
	assert.InDelta(t, 3.02, a.TimeToCrack.Years, 0.01)
	assert.Equal(t, Strong, a.Strength)
	assert.Equal(t, []string{
		"Add uppercase letters (A-Z)",
		"Add numbers (0-9)",
		"Add special characters (!@#$%^&*)",
	}, a.Recommendations)
}

func TestAnalyzeAllClasses(t *testing.T) {
	a := Analyze("P@ssw0rd123!")

	assert.Equal(t, CharacterSets{Lowercase: true, Uppercase: true, Digits: true, Symbols: true}, a.CharacterSets)
	assert.Equal(t, 94, a.CharacterSets.Size())
	assert.Equal(t, math.Pow(94, 12), a.TotalCombinations)
	assert.Equal(t, VeryStrong, a.Strength)
	assert.Equal(t, []string{"Excellent password strength!"}, a.Recommendations)
}

func TestAnalyzeTimeUnits(t *testing.T) {
	a := Analyze("Zx9!")

	ttc := a.TimeToCrack
	require.Greater(t, ttc.Seconds, 0.0)
	assert.Equal(t, a.TotalCombinations/AttemptsPerSecond, ttc.Seconds)
	assert.Equal(t, ttc.Seconds/60, ttc.Minutes)
	assert.Equal(t, ttc.Minutes/60, ttc.Hours)
	assert.Equal(t, ttc.Hours/24, ttc.Days)
	assert.Equal(t, ttc.Days/365.25, ttc.Years)
}

func TestAnalyzeStrengthBuckets(t *testing.T) {
	tests := []struct {
		password string
		want     Strength
	}{
		// 10^9 combinations: one second
		{"123456789", VeryWeak},
		// 26^8 ≈ 2.1e11 → 3.5 minutes
		{"abcdefgh", VeryWeak},
		// 62^8 ≈ 2.2e14 → 2.5 days
		{"Abcdefg1", Medium},
		// 26^10 ≈ 1.4e14 → 39 hours
		{"abcdefghij", Medium},
		// 36^8 ≈ 2.8e12 → 47 minutes; 36^9 ≈ 1.0e14 → 28 hours
		{"abcdefg1", VeryWeak},
		{"abcdefgh1", Medium},
		// 84^7 ≈ 3.0e13 → 8 hours
		{"Abcdef!", Weak},
		// 94^7 ≈ 6.5e13 → 18 hours
		{"Abcde1!", Weak},
		// 26^12 ≈ 3.02 years
		{"abcdefghijkl", Strong},
		// 94^12 ≈ 1.5e7 years
		{"Abcdefghij1!", VeryStrong},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.password).Strength)
		})
	}
}

func TestDetectCharacterSets(t *testing.T) {
	tests := []struct {
		password string
		want     CharacterSets
	}{
		{"abc", CharacterSets{Lowercase: true}},
		{"ABC", CharacterSets{Uppercase: true}},
		{"123", CharacterSets{Digits: true}},
		{"!?", CharacterSets{Symbols: true}},
		// Detection accepts symbols the generator never emits.
		{`'`, CharacterSets{Symbols: true}},
		{`"`, CharacterSets{Symbols: true}},
		{`\`, CharacterSets{Symbols: true}},
		{"`", CharacterSets{Symbols: true}},
		{"~", CharacterSets{Symbols: true}},
		{"/", CharacterSets{Symbols: true}},
		// Neither whitespace nor non-ASCII count toward any class.
		{" ", CharacterSets{}},
		{"é€ß", CharacterSets{}},
		{"aB3$", CharacterSets{Lowercase: true, Uppercase: true, Digits: true, Symbols: true}},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCharacterSets(tt.password))
		})
	}
}

func TestDetectedSymbolWeightIsFixed(t *testing.T) {
	one := Analyze("!").CharacterSets.Size()
	many := Analyze("!@#$%^&*").CharacterSets.Size()
	assert.Equal(t, 32, one)
	assert.Equal(t, one, many)
}

func TestAnalyzeUnclassifiedCharacters(t *testing.T) {
	a := Analyze("日本語")

	assert.Equal(t, 0.0, a.TotalCombinations)
	assert.Equal(t, VeryWeak, a.Strength)
	assert.Equal(t, []string{
		RecommendLength,
		RecommendLowercase,
		RecommendUppercase,
		RecommendDigits,
		RecommendSymbols,
	}, a.Recommendations)
}

func TestAnalyzeCountsCharactersNotBytes(t *testing.T) {
	// 11 ASCII letters plus one two-byte rune: 12 characters, no length advice.
	a := Analyze("abcdefghijkß")
	assert.NotContains(t, a.Recommendations, RecommendLength)
	assert.Equal(t, math.Pow(26, 12), a.TotalCombinations)
}

func TestAnalyzeCountsCodePointsOutsideBMP(t *testing.T) {
	// The emoji is one code point (two UTF-16 units, four bytes) and joins no class.
	a := Analyze("abcdefghij\U0001F600")
	assert.Contains(t, a.Recommendations, RecommendLength)
	assert.Equal(t, math.Pow(26, 11), a.TotalCombinations)
	assert.Equal(t, CharacterSets{Lowercase: true}, a.CharacterSets)

	b := Analyze("abcdefghijk\U0001F600")
	assert.NotContains(t, b.Recommendations, RecommendLength)
	assert.Equal(t, math.Pow(26, 12), b.TotalCombinations)
}

func TestAnalyzeRecommendationsIgnoreStrength(t *testing.T) {
	// Very strong by keyspace, yet lowercase is missing.
	a := Analyze(strings.Repeat("A1!", 10))
	assert.Equal(t, VeryStrong, a.Strength)
	assert.Equal(t, []string{RecommendLowercase}, a.Recommendations)

	// Short password with every class: only the length advice.
	b := Analyze("aB3$")
	assert.Equal(t, []string{RecommendLength}, b.Recommendations)
}

func TestAnalyzeOverflow(t *testing.T) {
	a := Analyze(strings.Repeat("aB3$", 100))

	assert.True(t, math.IsInf(a.TotalCombinations, 1))
	assert.True(t, math.IsInf(a.TimeToCrack.Years, 1))
	assert.Equal(t, VeryStrong, a.Strength)
	assert.Equal(t, "Infinity trillion years", TimeToCrackString(a.TimeToCrack))
}

func TestAnalyzeIdempotent(t *testing.T) {
	for _, p := range []string{"", "a", "P@ssw0rd123!", "correct horse battery staple"} {
		first, second := Analyze(p), Analyze(p)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Analyze(%q) not idempotent: %+v vs %+v", p, first, second)
		}
	}
}

func TestAnalyzeMonotonicInLength(t *testing.T) {
	for _, unit := range []string{"a", "aA", "a1", "aA1!"} {
		prev := Analyze(unit)
		for n := 2; n <= 60; n++ {
			cur := Analyze(strings.Repeat(unit, n))
			if cur.TotalCombinations < prev.TotalCombinations {
				t.Fatalf("combinations decreased for %q x%d", unit, n)
			}
			if cur.Strength.Rank() < prev.Strength.Rank() {
				t.Fatalf("strength weakened for %q x%d: %s -> %s", unit, n, prev.Strength, cur.Strength)
			}
			prev = cur
		}
	}
}
