package calc

import "log/slog"

// SolveOption is an option for evaluation.
type SolveOption interface {
	solveOption(solvectx) solvectx
}

type traceopt struct {
	log *slog.Logger
}

// solvectx holds the configuration of one evaluation.
type solvectx struct {
	// log receives a debug record for every reduction. nil disables tracing.
	log *slog.Logger
}

// Trace logs every step of evaluation to log at debug level. A nil logger
// disables tracing, which is the default.
func Trace(log *slog.Logger) SolveOption {
	return &traceopt{log}
}

func (o *traceopt) solveOption(p solvectx) solvectx {
	p.log = o.log
	return p
}

func newSolvectx(opts []SolveOption) solvectx {
	var p solvectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.solveOption(p)
	}
	return p
}

func (p *solvectx) trace(msg string, args ...any) {
	if p.log == nil {
		return
	}
	p.log.Debug(msg, args...)
}
