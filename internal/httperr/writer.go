// Package httperr renders classified failures to HTTP responses. It is the
// only place allowed to write a response body for a failure path.
package httperr

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gahette/judo-library/internal/config"
	"github.com/gahette/judo-library/internal/failure"
)

type Writer struct {
	verbosity string
	logger    *zap.Logger
}

func NewWriter(verbosity string, logger *zap.Logger) *Writer {
	return &Writer{verbosity: verbosity, logger: logger}
}

// Write terminates the request with the status and body for err.
// The body shape is {message} at every verbosity level; verbose adds the
// raw failure detail under "error", and minimal rewrites store-reported
// messages so no storage internals leak.
func (w *Writer) Write(c *gin.Context, err error) {
	f := failure.AsFailure(err)
	status := f.Status()

	message := f.Message
	if w.verbosity == config.VerbosityMinimal && f.Kind == failure.Storage {
		message = "Database Error"
	}

	body := gin.H{"message": message}
	if w.verbosity == config.VerbosityVerbose && f.Err != nil {
		body["error"] = f.Err.Error()
	}

	if status >= 500 {
		w.logger.Error("Request failed", zap.Int("status", status), zap.Error(f))
	}

	c.AbortWithStatusJSON(status, body)
}
