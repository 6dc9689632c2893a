package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vaultpass/passmeter-go/internal/analyzer"
	"github.com/vaultpass/passmeter-go/internal/crypto"
	"github.com/vaultpass/passmeter-go/internal/logger"
	"github.com/vaultpass/passmeter-go/internal/metrics"
	"github.com/vaultpass/passmeter-go/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen      *crypto.Generator
	defaults crypto.GeneratorOptions
	log      *zap.Logger
	metrics  *metrics.Collectors
}

// NewGeneratorService creates a new GeneratorService. Fields missing from a
// request are taken from defaults.
func NewGeneratorService(gen *crypto.Generator, defaults crypto.GeneratorOptions, log *zap.Logger, m *metrics.Collectors) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GeneratorService{gen: gen, defaults: defaults, log: log, metrics: m}
}

// Generate produces a password based on the given request. When req.Analyze is
// set the response also carries the analysis of the generated password.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := s.Options(req)

	password, err := s.gen.Generate(opts)
	if err != nil {
		logger.FromContext(ctx, s.log).Error("password generation failed", zap.Error(err))
		return model.GenerateResponse{}, err
	}
	s.metrics.ObserveGenerated(password == "")

	logger.FromContext(ctx, s.log).Debug("password generated",
		zap.Int("length", len(password)),
		zap.Int("pool", len(opts.Pool())),
	)

	resp := model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}
	if req.Analyze {
		analysis := AnalysisToResponse(analyzer.Analyze(password))
		resp.Analysis = &analysis
	}

	return resp, nil
}

// Options resolves a request against the service defaults.
func (s *GeneratorService) Options(req model.GenerateRequest) crypto.GeneratorOptions {
	return crypto.GeneratorOptions{
		Length:    intOrDefault(req.Length, s.defaults.Length),
		Digits:    boolOrDefault(req.Digits, s.defaults.Digits),
		Symbols:   boolOrDefault(req.Symbols, s.defaults.Symbols),
		Uppercase: boolOrDefault(req.Uppercase, s.defaults.Uppercase),
		Lowercase: boolOrDefault(req.Lowercase, s.defaults.Lowercase),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
