// Package sampledata generates plausible workout packages for demos and
// load checks. Output is fully determined by the seed.
package sampledata

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/okian/fittrack/internal/domain/dispatch"
	"github.com/okian/fittrack/internal/domain/model"
	"github.com/okian/fittrack/pkg/logger"
)

// Ranges for generated sessions.
const (
	durationMinH = 0.25
	durationMaxH = 2.5

	weightMinKg = 50.0
	weightMaxKg = 110.0
	heightMinCm = 150.0
	heightMaxCm = 200.0

	runStepsPerHourMin  = 8000.0
	runStepsPerHourMax  = 12000.0
	walkStepsPerHourMin = 5000.0
	walkStepsPerHourMax = 7000.0
	strokesPerHourMin   = 600.0
	strokesPerHourMax   = 1000.0

	shortPoolM      = 25.0
	longPoolM       = 50.0
	poolsPerHourMin = 20.0
	poolsPerHourMax = 60.0

	durationStepsPerH = 20 // 3 minute resolution
	bodyMeasureScale  = 10 // one decimal place
)

// Config controls package generation.
type Config struct {
	Count int
	Seed  uint64
	// Codes restricts the generated types; empty means all default types.
	Codes []string
}

// Generate returns cfg.Count packages. Every package passes validation by
// the default dispatch table.
func Generate(ctx context.Context, cfg Config) ([]model.Package, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, cfg.Count)
	}
	codes := cfg.Codes
	if len(codes) == 0 {
		codes = []string{dispatch.CodeSwimming, dispatch.CodeRunning, dispatch.CodeSportsWalking}
	}
	for _, c := range codes {
		switch c {
		case dispatch.CodeSwimming, dispatch.CodeRunning, dispatch.CodeSportsWalking:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownCode, c)
		}
	}

	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:], cfg.Seed)
	src := rand.NewChaCha8(seed)
	rng := rand.New(src)

	logger.Get().Info(ctx, "generating workout packages",
		logger.Int("count", cfg.Count),
		logger.Any("codes", codes),
	)

	pkgs := make([]model.Package, cfg.Count)
	for i := range pkgs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during package generation: %w", err)
		}
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return nil, fmt.Errorf("generate package id: %w", err)
		}
		code := codes[rng.IntN(len(codes))]
		pkgs[i] = model.Package{
			ID:     id.String(),
			Code:   code,
			Values: generateValues(rng, code),
		}
	}

	logger.Get().Info(ctx, "generated packages successfully", logger.Int("count", len(pkgs)))
	return pkgs, nil
}

func generateValues(rng *rand.Rand, code string) []float64 {
	duration := math.Max(durationMinH, math.Round(between(rng, durationMinH, durationMaxH)*durationStepsPerH)/durationStepsPerH)
	weight := roundMeasure(between(rng, weightMinKg, weightMaxKg))

	switch code {
	case dispatch.CodeRunning:
		steps := math.Round(between(rng, runStepsPerHourMin, runStepsPerHourMax) * duration)
		return []float64{steps, duration, weight}
	case dispatch.CodeSportsWalking:
		steps := math.Round(between(rng, walkStepsPerHourMin, walkStepsPerHourMax) * duration)
		height := roundMeasure(between(rng, heightMinCm, heightMaxCm))
		return []float64{steps, duration, weight, height}
	default:
		strokes := math.Round(between(rng, strokesPerHourMin, strokesPerHourMax) * duration)
		pool := shortPoolM
		if rng.IntN(2) == 1 {
			pool = longPoolM
		}
		count := math.Max(1, math.Round(between(rng, poolsPerHourMin, poolsPerHourMax)*duration))
		return []float64{strokes, duration, weight, pool, count}
	}
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func roundMeasure(v float64) float64 {
	return math.Round(v*bodyMeasureScale) / bodyMeasureScale
}
