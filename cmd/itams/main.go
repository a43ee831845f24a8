// Command itams is the terminal companion of the asset console.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/itams/internal/cli"
)

func main() {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()
	os.Exit(cli.Execute())
}
