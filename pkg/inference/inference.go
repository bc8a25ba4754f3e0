package inference

import (
	"context"
)

// Params carries per-call generation settings. Zero fields fall back to the provider defaults.
type Params struct {
	Model       string
	Temperature float64
	TopK        int
	TopP        float64
}

// Inferencer defines an interface for running a single text generation.
type Inferencer interface {
	Infer(ctx context.Context, params *Params, user string) (string, error)
}
