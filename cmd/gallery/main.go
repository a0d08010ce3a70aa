package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"

	"portfolio-gallery-service/internal/cli"
)

func main() {
	// Keep log lines off the terminal UI unless asked for.
	level, err := log.ParseLevel(os.Getenv("LOGGER_LEVEL"))
	if err != nil {
		level = log.WarnLevel
	}
	log.SetLevel(level)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
