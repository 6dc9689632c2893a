package service

import (
	"context"
	"math"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/vaultpass/passmeter-go/internal/analyzer"
	"github.com/vaultpass/passmeter-go/internal/crypto"
	"github.com/vaultpass/passmeter-go/internal/logger"
	"github.com/vaultpass/passmeter-go/internal/metrics"
	"github.com/vaultpass/passmeter-go/internal/model"
)

// AnalyzerService handles password analysis requests.
type AnalyzerService struct {
	log     *zap.Logger
	metrics *metrics.Collectors
	fp      *crypto.Fingerprinter
}

// NewAnalyzerService creates a new AnalyzerService. Any argument may be nil.
func NewAnalyzerService(log *zap.Logger, m *metrics.Collectors, fp *crypto.Fingerprinter) *AnalyzerService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalyzerService{log: log, metrics: m, fp: fp}
}

// Analyze runs the strength analysis and shapes it for API responses.
func (s *AnalyzerService) Analyze(ctx context.Context, req model.AnalyzeRequest) model.AnalysisResponse {
	return AnalysisToResponse(s.Evaluate(ctx, req.Password))
}

// Evaluate analyzes password once, recording the bucket in logs and metrics.
func (s *AnalyzerService) Evaluate(ctx context.Context, password string) analyzer.Analysis {
	result := analyzer.Analyze(password)
	s.metrics.ObserveAnalysis(string(result.Strength))

	l := logger.FromContext(ctx, s.log)
	if s.fp != nil && password != "" {
		l = l.With(zap.String("fingerprint", s.fp.Sum(password)))
	}
	l.Debug("password analyzed",
		zap.String("strength", string(result.Strength)),
		zap.Int("recommendations", len(result.Recommendations)),
	)

	return result
}

// AnalysisToResponse converts an analysis into its wire form.
func AnalysisToResponse(a analyzer.Analysis) model.AnalysisResponse {
	recs := make([]string, len(a.Recommendations))
	copy(recs, a.Recommendations)

	return model.AnalysisResponse{
		CharacterSets:     a.CharacterSets,
		TotalCombinations: finite(a.TotalCombinations),
		AttemptsPerSecond: a.AttemptsPerSecond,
		TimeToCrack: model.TimeToCrackResponse{
			Seconds: finite(a.TimeToCrack.Seconds),
			Minutes: finite(a.TimeToCrack.Minutes),
			Hours:   finite(a.TimeToCrack.Hours),
			Days:    finite(a.TimeToCrack.Days),
			Years:   finite(a.TimeToCrack.Years),
		},
		Strength:                 a.Strength,
		Recommendations:          recs,
		StrengthLabel:            a.Strength.Label(),
		TimeToCrackDisplay:       analyzer.TimeToCrackString(a.TimeToCrack),
		AttemptsPerSecondDisplay: humanize.Comma(int64(a.AttemptsPerSecond)),
	}
}

// finite returns nil for values JSON cannot represent.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
