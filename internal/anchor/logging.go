package anchor

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logging anchors the structured logging stack. Records are encoded for
// real and written to a discard sink standing in for a non-routable
// reporting destination; the encoder, core, and field machinery all end
// up in the binary either way.
type Logging struct{}

func (Logging) Name() string { return "logging" }

func (l Logging) Exercise(ctx context.Context) Result {
	res := Result{Name: l.Name()}

	var logger *zap.Logger
	call(&res, func() error {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zapcore.InfoLevel)
		logger = zap.New(core)
		return nil
	})

	call(&res, func() error {
		if logger == nil {
			return nil
		}
		defer logger.Sync()
		named := logger.Named("exerciser")
		named.Info("anchor pass",
			zap.String("subsystem", "logging"),
			zap.Int("pid", os.Getpid()),
		)
		named.Sugar().Infow("anchor pass", "surface", "sugared")
		return nil
	})

	return res
}
