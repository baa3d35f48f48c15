package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// dotEnvCandidates are checked in every directory on the way up.
var dotEnvCandidates = []string{
	".env",
	filepath.Join("deploy", "docker", ".env"),
}

// LoadDotEnvUp searches the working directory and up to maxDepth parents for a .env
// file and loads the first match without overriding variables already set.
// It returns the loaded path, or "" when none was found. Safe in production.
func LoadDotEnvUp(maxDepth int) string {
	if maxDepth <= 0 {
		maxDepth = 6
	}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for i := 0; i <= maxDepth; i++ {
		for _, name := range dotEnvCandidates {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				if err := godotenv.Load(p); err != nil {
					return ""
				}
				return p
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
