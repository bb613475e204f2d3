package seq

import (
	"github.com/rs/zerolog"

	"github.com/tychoish/coll/ers"
	"github.com/tychoish/coll/opt"
)

// TraceOptions configures a Trace stage.
type TraceOptions struct {
	// Logger receives the events. The default logger discards
	// everything.
	Logger zerolog.Logger
	// Level is the level of every event; defaults to debug.
	Level zerolog.Level
	// Stage names the stage in every event.
	Stage string
	// Values includes each element in its event, when true.
	Values bool
}

// Validate checks the options, and is called after all options are
// applied.
func (o *TraceOptions) Validate() error {
	if o.Stage == "" {
		return ers.Wrap(ers.ErrInvalidArgument, "trace stage name must not be empty")
	}
	if o.Level < zerolog.TraceLevel || o.Level > zerolog.ErrorLevel {
		return ers.Wrapf(ers.ErrInvalidArgument, "trace level %q", o.Level)
	}
	return nil
}

// TraceOption is a functional option for Trace.
type TraceOption = opt.Provider[*TraceOptions]

func TraceLogger(l zerolog.Logger) TraceOption {
	return func(o *TraceOptions) error { o.Logger = l; return nil }
}

func TraceLevel(l zerolog.Level) TraceOption {
	return func(o *TraceOptions) error { o.Level = l; return nil }
}

func TraceStage(name string) TraceOption {
	return func(o *TraceOptions) error { o.Stage = name; return nil }
}

func TraceValues(on bool) TraceOption {
	return func(o *TraceOptions) error { o.Values = on; return nil }
}

type traceStage[T any] struct {
	stage[T]
	conf  *TraceOptions
	pulls int
}

func (s *traceStage[T]) Pull() (out T, ok bool) {
	if s.done {
		return out, false
	}

	s.pulls++
	if out, ok = s.next(); !ok {
		s.conf.Logger.WithLevel(s.conf.Level).
			Str("stage", s.conf.Stage).
			Int("pulls", s.pulls).
			Msg("end")
		return out, false
	}

	ev := s.conf.Logger.WithLevel(s.conf.Level).
		Str("stage", s.conf.Stage).
		Int("pull", s.pulls)
	if s.conf.Values {
		ev = ev.Interface("value", out)
	}
	ev.Msg("pull")

	return out, true
}

// Trace is a pass-through stage that writes one structured log event
// per element pulled through it, and one when the sequence ends.
// Invalid options are reported when the stage is constructed.
func Trace[T any](src Source[T], opts ...TraceOption) (Source[T], error) {
	conf, err := opt.Join(opts...).Build(&TraceOptions{
		Logger: zerolog.Nop(),
		Level:  zerolog.DebugLevel,
		Stage:  "seq",
	})
	if err != nil {
		return nil, err
	}

	return &traceStage[T]{stage: stage[T]{src: src}, conf: conf}, nil
}
