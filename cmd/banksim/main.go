package main

import (
	"flag"
	"os"

	"banksim"

	"github.com/rs/zerolog"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()

	cfg, err := banksim.LoadConfig(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading config file")
	}

	reg, err := banksim.NewRegistry(&cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("error initializing registry")
	}
	svc := banksim.NewService(reg, &logger)
	sess := banksim.NewSession(svc, os.Stdin, os.Stdout, &logger, cfg.Statements.OutputDir)

	if err := sess.Run(); err != nil {
		logger.Fatal().Err(err).Msg("session ended abnormally")
	}
}
