// Package logging builds the logrus logger used throughout satispy,
// replacing ad hoc fmt.Println/log calls with structured, leveled
// output.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stderr at the given level (any name
// logrus.ParseLevel accepts, such as "debug", "info", "warn", "error";
// an unrecognized name falls back to "info"). Fields such as the instance path or random seed should be
// attached per call site with WithField/WithFields rather than baked
// in here.
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}
