package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
)

func configureLogging(verbose bool, out io.Writer) {
	logger := logrus.StandardLogger()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)

		return
	}

	logger.SetLevel(logrus.InfoLevel)
}
