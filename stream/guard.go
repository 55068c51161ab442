package stream

import (
	"os"

	"github.com/kbukum/gostream/errors"
	"github.com/kbukum/gostream/logger"
)

// Sentinels for errors.Is. Errors returned by the package carry the same
// code plus details naming the failing operation.
var (
	ErrEndlessStream = errors.New(errors.ErrCodeEndlessStream, "stream is endless")
	ErrNotClonable   = errors.New(errors.ErrCodeNotClonable, "stream is not clonable")
)

// exit terminates the process under PolicyAbort. Replaced in tests.
var exit = os.Exit

func log() *logger.Logger {
	return logger.Get("stream")
}

// requireFinite enforces the finite-input precondition of op. It runs
// before anything is pulled from s.
func requireFinite[T any](op string, s Stream[T]) error {
	if !s.Endless() {
		return nil
	}
	err := errors.EndlessStream(op)
	if CurrentOptions().OnEndless == PolicyAbort {
		log().Critical("operation applied to endless stream", logger.Fields(
			logger.FieldOperation, op,
			logger.FieldPolicy, PolicyAbort.String(),
		))
		exit(1)
		return err
	}
	log().Debug("rejected endless stream", logger.ErrorFields(op, err))
	return err
}
