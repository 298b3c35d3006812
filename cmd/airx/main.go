// Command airx dissects a rule export file and prints one JSON document
// per detected section to stdout. The target file may be given as the
// single argument; without one the compiled-in default export is used.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arloliu/airx"
	"github.com/arloliu/airx/dissect"
)

const defaultExport = "./AIEngineRule_1000000003_20250409.airx"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	path := defaultExport
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	err := airx.Dump(os.Stdout, path, dissect.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("extraction failed")
	}
}
