package confirm

import (
	"context"
	"errors"
)

// Sentinel errors returned by confirmers.
var (
	// ErrInvalidInput indicates a request that cannot succeed as configured.
	ErrInvalidInput = errors.New("confirm: invalid input")
	// ErrRateLimited indicates the upstream asked us to back off.
	ErrRateLimited = errors.New("confirm: rate limited")
	// ErrResponseInvalid indicates an upstream answer that could not be parsed.
	ErrResponseInvalid = errors.New("confirm: invalid response")
	// ErrUnavailable indicates no confirmation service is configured or reachable.
	ErrUnavailable = errors.New("confirm: service unavailable")
)

// Verdict is the judge's answer for one image.
type Verdict struct {
	Found    bool   `json:"found"`
	Guidance string `json:"guidance"`
}

// Confirmer judges whether image shows item.
type Confirmer interface {
	Confirm(ctx context.Context, image []byte, item string) (Verdict, error)
}

// Func adapts a function to Confirmer.
type Func func(ctx context.Context, image []byte, item string) (Verdict, error)

// Confirm calls f.
func (f Func) Confirm(ctx context.Context, image []byte, item string) (Verdict, error) {
	return f(ctx, image, item)
}

// Static always returns the same verdict and error.
type Static struct {
	Verdict Verdict
	Err     error
}

// Confirm returns s.Verdict and s.Err, or ctx.Err() if ctx is already done.
func (s Static) Confirm(ctx context.Context, _ []byte, _ string) (Verdict, error) {
	if err := ctx.Err(); err != nil {
		return Verdict{}, err
	}
	return s.Verdict, s.Err
}

// Unavailable is the confirmer used when none is configured.
var Unavailable Confirmer = Static{Err: ErrUnavailable}
