package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const levelEnv = "ARROWPRIME_LOG_LEVEL"

var Logger zerolog.Logger

func init() {
	loglevel := os.Getenv(levelEnv)
	lvl, err := zerolog.ParseLevel(loglevel)
	if err != nil {
		log.Printf("invalid value '%s' given for %s. ignoring", loglevel, levelEnv)
	}

	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC822}).Level(lvl).With().Timestamp().Logger()
}

func Debug() *zerolog.Event {
	return Logger.Debug()
}
