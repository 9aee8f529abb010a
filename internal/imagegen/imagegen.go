// Package imagegen wraps single request/response calls to external image
// generation providers.
package imagegen

import "context"

// Options are the generation parameters common to both providers.
type Options struct {
	Width         int
	Height        int
	Samples       int
	GuidanceScale float64
}

// withDefaults fills unset fields with conservative defaults.
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1024
	}
	if o.Height <= 0 {
		o.Height = 1024
	}
	if o.Samples <= 0 {
		o.Samples = 1
	}
	if o.GuidanceScale <= 0 {
		o.GuidanceScale = 7
	}
	return o
}

// ImageClient issues one blocking text-to-image call and returns the
// first generated image as PNG bytes. No retries.
type ImageClient interface {
	Generate(ctx context.Context, prompt string, opts Options) ([]byte, error)
	Name() string
}
