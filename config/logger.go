package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger.
var Log = logrus.New()

// InitLogger configures the shared logger from LOG_LEVEL and ENVIRONMENT.
func InitLogger() {
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	env := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if env == "production" || env == "staging" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}
