package model

// MaxGenerateLength caps the number of characters a single request may ask for.
const MaxGenerateLength = 1024

// GenerateRequest represents a password generation request.
// Pointer fields distinguish a missing value (use the default) from an explicit one.
// An explicit length <= 0 or every class set to false produces an empty password.
type GenerateRequest struct {
	Length    *int  `json:"length" validate:"omitempty,lte=1024"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Analyze   bool  `json:"analyze"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string            `json:"password"`
	Length   int               `json:"length"`
	Analysis *AnalysisResponse `json:"analysis,omitempty"`
}
