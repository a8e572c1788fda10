package main

import (
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/iw2rmb/panes/internal/log"
)

func main() {
	err := newRootCmd().Execute()
	err = multierr.Append(err, log.Flush())
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
