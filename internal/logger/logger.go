package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger.
var Log = logrus.New()

// Initialize configures the shared logger from the environment.
func Initialize() {
	level := logrus.InfoLevel
	switch os.Getenv("LOG_LEVEL") {
	case "DEBUG":
		level = logrus.DebugLevel
	case "WARN":
		level = logrus.WarnLevel
	case "ERROR":
		level = logrus.ErrorLevel
	}

	Log.SetLevel(level)
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func Info(msg string, fields map[string]interface{}) {
	Log.WithFields(fields).Info(msg)
}

func Warn(msg string, fields map[string]interface{}) {
	Log.WithFields(fields).Warn(msg)
}

func Error(msg string, err error, fields map[string]interface{}) {
	Log.WithFields(fields).WithError(err).Error(msg)
}

func Debug(msg string, fields map[string]interface{}) {
	Log.WithFields(fields).Debug(msg)
}
