package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vaultpass/passmeter-go/internal/analyzer"
	"github.com/vaultpass/passmeter-go/internal/crypto"
	"github.com/vaultpass/passmeter-go/internal/metrics"
	"github.com/vaultpass/passmeter-go/internal/model"
)

func TestAnalyze_DisplayFields(t *testing.T) {
	svc := NewAnalyzerService(nil, nil, nil)

	resp := svc.Analyze(context.Background(), model.AnalyzeRequest{Password: "aaaaaaaaaaaa"})

	assert.Equal(t, analyzer.Strong, resp.Strength)
	assert.Equal(t, "STRONG", resp.StrengthLabel)
	assert.Equal(t, "3 years", resp.TimeToCrackDisplay)
	assert.Equal(t, "1,000,000,000", resp.AttemptsPerSecondDisplay)
	require.NotNil(t, resp.TotalCombinations)
	assert.InDelta(t, 9.54e16, *resp.TotalCombinations, 0.01e16)
}

func TestAnalyze_EmptyPassword(t *testing.T) {
	svc := NewAnalyzerService(nil, nil, nil)

	resp := svc.Analyze(context.Background(), model.AnalyzeRequest{})

	assert.Equal(t, analyzer.VeryWeak, resp.Strength)
	assert.Equal(t, []string{analyzer.RecommendEnterPassword}, resp.Recommendations)
	require.NotNil(t, resp.TotalCombinations)
	assert.Zero(t, *resp.TotalCombinations)
	assert.Equal(t, "0 seconds", resp.TimeToCrackDisplay)
}

func TestAnalyze_OverflowEncodesAsNull(t *testing.T) {
	svc := NewAnalyzerService(nil, nil, nil)

	resp := svc.Analyze(context.Background(), model.AnalyzeRequest{Password: strings.Repeat("aB3$", 100)})
	assert.Nil(t, resp.TotalCombinations)
	assert.Nil(t, resp.TimeToCrack.Years)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"totalCombinations":null`)
	assert.Contains(t, string(body), `"strength":"very-strong"`)
}

func TestAnalyze_RecordsMetricsAndLogsFingerprint(t *testing.T) {
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	fp, err := crypto.NewFingerprinter(nil)
	require.NoError(t, err)
	core, logs := observer.New(zapcore.DebugLevel)

	svc := NewAnalyzerService(zap.New(core), m, fp)
	svc.Analyze(context.Background(), model.AnalyzeRequest{Password: "P@ssw0rd123!"})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Analyses.WithLabelValues("very-strong")))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, fp.Sum("P@ssw0rd123!"), fields["fingerprint"])
	assert.NotContains(t, entry.Message, "P@ssw0rd123!")
	for _, v := range fields {
		assert.NotEqual(t, "P@ssw0rd123!", v)
	}
}

func TestEvaluate_AnalyzesOnce(t *testing.T) {
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	core, logs := observer.New(zapcore.DebugLevel)

	svc := NewAnalyzerService(zap.New(core), m, nil)
	got := svc.Evaluate(context.Background(), "password")

	assert.Equal(t, analyzer.Analyze("password"), got)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Analyses.WithLabelValues("very-weak")))
	assert.Equal(t, 1, logs.FilterMessage("password analyzed").Len())
	_, hasFingerprint := logs.All()[0].ContextMap()["fingerprint"]
	assert.False(t, hasFingerprint, "no fingerprinter configured")
}

func TestAnalysisToResponseCopiesRecommendations(t *testing.T) {
	a := analyzer.Analyze("abc")
	resp := AnalysisToResponse(a)
	resp.Recommendations[0] = "changed"
	assert.NotEqual(t, "changed", a.Recommendations[0])
}
