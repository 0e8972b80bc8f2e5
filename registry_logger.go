package ucum

import "go.uber.org/zap"

// buildLogger is the one logging call site in this package: the registry
// is an immutable value constructed once (spec.md §4.1, §9 "Mutable
// global registry"), and that one-time build is the only phase with a
// legitimate structured-logging use, grounded on theRebelliousNerd-codenerd's
// and turtacn-KeyIP-Intelligence's direct use of go.uber.org/zap. Nothing
// downstream of construction — parsing, evaluation, conversion — logs:
// those are pure, synchronous, allocation-light calls with no I/O surface
// (spec.md §1, §5).
func buildLogger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
