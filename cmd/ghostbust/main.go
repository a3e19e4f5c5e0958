package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"ghostbust/internal/cli"
	"ghostbust/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Parse command-line flags
	configPath := flag.String("config", "ghostbust.yaml", "Path to a YAML or JSON config file")
	logLevel := flag.String("loglevel", "", "Set logging level (debug, info, warn, error)")
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	flag.Parse()

	// 2. Set up top-level dependencies (Logger)
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// 3. Load game configuration; a .env file may carry GHOSTBUST_* overrides
	loadDotEnv(log, ".env")
	gameConfig, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *logLevel != "" {
		gameConfig.LogLevel = *logLevel
	}
	if *seed != 0 {
		gameConfig.Seed = *seed
	}
	if err := gameConfig.Validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	level, _ := logrus.ParseLevel(gameConfig.LogLevel)
	log.SetLevel(level)

	// 4. Create the CLI, injecting the logger
	ui := cli.NewCLI(log)

	// 5. Run the application
	if gameConfig.Seed == 0 {
		gameConfig.Seed = time.Now().UnixNano()
	}
	log.Debugf("Using seed %d.", gameConfig.Seed)
	randSource := rand.New(rand.NewSource(gameConfig.Seed))
	if err := ui.Run(flag.Args(), gameConfig, randSource); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}

// loadDotEnv exports the variables in the given files. A missing file is fine.
func loadDotEnv(log logrus.FieldLogger, filenames ...string) {
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			log.Warnf("Ignoring %s: %v", name, err)
		}
	}
}
