package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
)

const usageExitCode = 1

var (
	// globals used to patch over calls to os.Exit() during test

	logFatalf = log.Fatalf
	osExit    = os.Exit

	// stderr receives usage errors
	stderr io.Writer = os.Stderr
)

func wrapFatalln(msg string, err error) {
	if err == nil {
		logFatalf("%s", msg)
	} else {
		logFatalf("%v", fmt.Errorf(msg+": %w", err))
	}
}

func wrapFatalWithCodef(code int, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(stderr, format+"\n", args...)
	osExit(code)
}
