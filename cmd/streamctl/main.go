// Command streamctl runs small stream pipelines from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/kbukum/gostream/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "streamctl: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for rejected input and stream contract violations, 1 for
// everything else.
func exitCode(err error) int {
	if errors.HasCode(err, errors.ErrCodeInvalidInput) {
		return 2
	}
	if appErr, ok := errors.AsAppError(err); ok && errors.IsContractCode(appErr.Code) {
		return 2
	}
	return 1
}
