package service

import (
	"fmt"
	"math"
)

const factorTolerance = 1e-9

// ScalePolicy decides which scale factors are accepted. The zero value accepts any
// positive finite factor.
type ScalePolicy struct {
	allowed []float64
}

// NewScalePolicy returns a policy accepting only factors. With no factors it accepts
// any positive finite factor.
func NewScalePolicy(factors ...float64) ScalePolicy {
	if len(factors) == 0 {
		return ScalePolicy{}
	}
	allowed := make([]float64, len(factors))
	copy(allowed, factors)
	return ScalePolicy{allowed: allowed}
}

// Validate returns ErrInvalidScaleFactor when factor is not accepted.
func (p ScalePolicy) Validate(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return fmt.Errorf("%w: %v must be a positive number", ErrInvalidScaleFactor, factor)
	}
	if len(p.allowed) == 0 {
		return nil
	}
	for _, f := range p.allowed {
		if math.Abs(f-factor) < factorTolerance {
			return nil
		}
	}
	return fmt.Errorf("%w: %v is not one of %v", ErrInvalidScaleFactor, factor, p.allowed)
}

// Factors returns a copy of the accepted factors, or nil when unrestricted.
func (p ScalePolicy) Factors() []float64 {
	if len(p.allowed) == 0 {
		return nil
	}
	out := make([]float64, len(p.allowed))
	copy(out, p.allowed)
	return out
}
