package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flag.Parse()

	config := loadConfig(*configPath)

	game, err := initializeGame(config, os.Stdout)
	if err != nil {
		log.Fatalf("init: %+v", err)
	}
	displayGameInfo(config, game)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if config.Interactive {
		runInteractive(game, os.Stdin, sigChan)
	} else {
		runAutomatic(game, config, sigChan)
	}
	displayFinalStats(game)
}
