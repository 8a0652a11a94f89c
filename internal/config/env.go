package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// loadEnv reads .env files into the process environment. Variables that are already
// set win, and missing files are skipped.
func loadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
		if home, err := os.UserHomeDir(); err == nil {
			files = append(files, filepath.Join(home, ".gptsmith.env"))
		}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}
