package facodec

// BuilderOption configures dictionary building.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	logger *Logger
}

// WithLogger configures structured logging for the build phase.
// Pass nil to disable logging.
func WithLogger(logger *Logger) BuilderOption {
	return func(o *builderOptions) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyBuilderOptions(optFns []BuilderOption) builderOptions {
	o := builderOptions{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// SnapshotOption configures dictionary snapshot writing.
type SnapshotOption func(*snapshotOptions)

type snapshotOptions struct {
	compression CompressionType
}

// WithCompression selects the snapshot payload compression.
// The default is CompressionZSTD.
func WithCompression(c CompressionType) SnapshotOption {
	return func(o *snapshotOptions) {
		o.compression = c
	}
}

func applySnapshotOptions(optFns []SnapshotOption) snapshotOptions {
	o := snapshotOptions{
		compression: CompressionZSTD,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
