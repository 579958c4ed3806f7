package main

import (
	"io"
	"log"
	"os"

	"github.com/gravitas-015/gridcore/internal/config"
	"github.com/gravitas-015/gridcore/internal/query"
)

func main() {
	log.SetOutput(os.Stderr)
	log.Println("Starting gridkit...")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/gridkit.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded from %s", configPath)

	// Queries come from the first argument, or stdin
	var in io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to open queries: %v", err)
		}
		defer f.Close()
		in = f
		log.Printf("Reading queries from %s", os.Args[1])
	}

	if err := query.New(cfg).Run(in, os.Stdout); err != nil {
		log.Fatalf("Query run failed: %v", err)
	}
}
