package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// InitLogrus configures the shared logger. Destination "file" appends to
// accounting.log in the working directory; anything else logs to stdout.
func InitLogrus(destination string) {
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	switch destination {
	case "file":
		f, err := os.OpenFile("accounting.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			logger.SetOutput(os.Stdout)
			logger.Warn("could not open log file, falling back to stdout: " + err.Error())
			return
		}
		logger.SetOutput(f)
	default:
		logger.SetOutput(os.Stdout)
	}
}

func Log(level logrus.Level, message string) {
	logger.Log(level, message)
}

// Logger returns the shared logrus instance for components that want
// structured entries.
func Logger() *logrus.Logger {
	return logger
}
