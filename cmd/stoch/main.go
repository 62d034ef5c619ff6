package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/panyam/stoch/cmd/stoch/commands"
)

func main() {
	// Optional .env for default seeds/output dirs; absence is fine.
	if _, err := os.Stat(".env"); err == nil {
		godotenv.Load(".env")
	}
	commands.Execute()
}
