// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It is usable before Init is called (logrus
// defaults) so library code never has to nil-check it.
var Log = logrus.New()

// Init configures Log from the environment. Call once from main or TestMain.
//
//	LOG_LEVEL  logrus level name, default "info"
//	LOG_FORMAT "json" for JSON lines, anything else for text
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput is Init with an explicit sink.
func InitWithOutput(w io.Writer) {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(w)
}

// For returns an entry tagged with the emitting subsystem.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
