// Package logging configures the process-wide logger.
//
// Each run writes to a timestamped file under logs/ and mirrors every
// line to stderr, so a failed pipeline leaves a complete record of which
// step failed and what the external tool reported.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const logDir = "logs"

// Setup directs the standard logger to both stderr and a timestamped
// file under logs/. It returns the log file for closing at process exit
// and the file's path.
func Setup() (*os.File, string, error) {
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, "", fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("kamodoctl_%s.log", time.Now().Format("20060102_150405"))
	path := filepath.Join(logDir, name)

	// #nosec G304 - path is constructed from a fixed directory and timestamp
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create log file: %w", err)
	}

	log.SetFlags(log.LstdFlags)
	log.SetOutput(io.MultiWriter(os.Stderr, file))
	log.Printf("Log file created: %s", path)

	return file, path, nil
}
