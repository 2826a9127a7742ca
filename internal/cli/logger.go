package cli

import (
	"log"

	"go.uber.org/zap"
)

// NewLogger returns a development logger in debug mode, a production one otherwise.
func NewLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error

	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}

	if err != nil {
		log.Fatal(err)
	}

	return logger
}
