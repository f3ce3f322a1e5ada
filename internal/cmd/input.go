package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

const stdinName = "-"

// openInput resolves the --input flag. An empty path or "-" reads from
// override when set, otherwise from the process stdin.
func openInput(path string, override io.Reader, logger *slog.Logger) (io.ReadCloser, error) {
	if path != "" && path != stdinName {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		return f, nil
	}

	if override != nil {
		return io.NopCloser(override), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Warn("Reading header definitions from a terminal; pipe input-event-codes.h in or end input with Ctrl-D")
	}
	return io.NopCloser(os.Stdin), nil
}
