package model

import "github.com/vaultpass/passmeter-go/internal/analyzer"

// MaxPasswordLength caps the number of characters accepted for analysis.
const MaxPasswordLength = 1024

// AnalyzeRequest represents a password analysis request.
type AnalyzeRequest struct {
	Password string `json:"password" validate:"max=1024"`
}

// TimeToCrackResponse mirrors analyzer.TimeToCrack. Values that overflow
// float64 are encoded as null since JSON has no infinity.
type TimeToCrackResponse struct {
	Seconds *float64 `json:"seconds"`
	Minutes *float64 `json:"minutes"`
	Hours   *float64 `json:"hours"`
	Days    *float64 `json:"days"`
	Years   *float64 `json:"years"`
}

// AnalysisResponse is the analysis record plus display strings for a front end.
type AnalysisResponse struct {
	CharacterSets            analyzer.CharacterSets `json:"characterSets"`
	TotalCombinations        *float64               `json:"totalCombinations"`
	AttemptsPerSecond        float64                `json:"attemptsPerSecond"`
	TimeToCrack              TimeToCrackResponse    `json:"timeToCrack"`
	Strength                 analyzer.Strength      `json:"strength"`
	Recommendations          []string               `json:"recommendations"`
	StrengthLabel            string                 `json:"strengthLabel"`
	TimeToCrackDisplay       string                 `json:"timeToCrackDisplay"`
	AttemptsPerSecondDisplay string                 `json:"attemptsPerSecondDisplay"`
}
