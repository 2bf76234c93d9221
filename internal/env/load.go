package env

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Load exports the variables of the given dotenv files (default ./.env) into the
// process environment. Variables already set are left untouched, so the real
// environment always wins. Missing files are ignored.
func Load(filenames ...string) {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Error().Err(err).Msg("error loading .env file")
	}
}
