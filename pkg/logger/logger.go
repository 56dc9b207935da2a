package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance for the whole application.
var Log *logrus.Logger

// Init initializes the global logger.
// Must be called once at application startup in main.go.
func Init() {
	Log = logrus.New()

	// Log level comes from the environment. Default is "info";
	// set "debug" when chasing FOV or AI issues.
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" for production log collection, "text" for development.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Silence redirects all output to the given writer (or discards it when nil).
// The terminal client uses this so log lines never tear the tcell screen.
func Silence(w io.Writer) {
	if Log == nil {
		Init()
	}
	if w == nil {
		w = io.Discard
	}
	Log.SetOutput(w)
	Log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
}
