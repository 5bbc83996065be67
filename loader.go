package colframe

import (
	"context"

	"go.uber.org/zap"
)

// Loader reads tabular files into frames. Use NewLoader to create one and
// chain the With methods to configure it.
//
//	frame, err := colframe.NewLoader[int64]().
//		WithLogger(logger).
//		Load(ctx, "scores.csv.gz")
type Loader[T Number] struct {
	// reader decodes files into text tables
	reader TableReader
	// logger receives column classification events
	logger *zap.Logger
}

// NewLoader creates a loader that reads files with FileCodec and does not log.
func NewLoader[T Number]() *Loader[T] {
	return &Loader[T]{
		reader: NewFileCodec(),
		logger: zap.NewNop(),
	}
}

// WithReader replaces the table reader.
func (l *Loader[T]) WithReader(r TableReader) *Loader[T] {
	l.reader = r
	return l
}

// WithLogger sets the logger. A nil logger disables logging.
func (l *Loader[T]) WithLogger(logger *zap.Logger) *Loader[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	l.logger = logger
	return l
}

// Load reads path and builds a frame from it.
//
// Each column whose values all parse as T becomes numeric; any other column
// is discrete. I/O and decoding failures are returned as errors.
func (l *Loader[T]) Load(ctx context.Context, path string) (*Frame[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, NewErrorContext("load", path).Error(err)
	}

	table, err := l.reader.ReadTable(path)
	if err != nil {
		return nil, err
	}

	plans, err := planTable[T](table)
	if err != nil {
		return nil, NewErrorContext("load", path).Error(err)
	}

	for _, p := range plans {
		kind := KindDiscrete
		if p.numeric {
			kind = KindNumeric
		}
		l.logger.Debug("column classified",
			zap.String("path", path),
			zap.String("column", p.name),
			zap.Stringer("kind", kind),
			zap.Int("rows", len(p.texts)))
		if p.mixedAt >= 0 {
			l.logger.Warn("column kept discrete: value does not parse as a number",
				zap.String("path", path),
				zap.String("column", p.name),
				zap.Int("row", p.mixedAt),
				zap.String("value", p.texts[p.mixedAt]))
		}
	}

	frame := buildFromPlans(plans)
	l.logger.Info("frame loaded",
		zap.String("path", path),
		zap.Int("rows", frame.NumRows()),
		zap.Int("columns", frame.NumCols()))
	return frame, nil
}

// FromFile reads path into a frame with the default loader.
func FromFile[T Number](path string) (*Frame[T], error) {
	return NewLoader[T]().Load(context.Background(), path)
}
