package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/trebuchet-org/chaincfg/internal/domain"
)

// envFiles are loaded in order. Earlier files and the process environment win.
var envFiles = []string{".env", ".env.local"}

// projectMarkers identify a project root when walking up from the working directory
var projectMarkers = []string{"chaincfg.toml", "foundry.toml", "hardhat.config.ts", ".env"}

// LoadDotEnv loads the project's .env files into the process environment.
// Variables already set in the process are never overridden. Missing files are
// skipped; files that fail to parse are reported but do not stop the others.
func LoadDotEnv(projectRoot string) ([]string, error) {
	var loaded []string
	var errs []error

	for _, name := range envFiles {
		path := filepath.Join(projectRoot, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			errs = append(errs, fmt.Errorf("failed to load %s: %w", path, err))
			continue
		}
		loaded = append(loaded, path)
	}

	return loaded, errors.Join(errs...)
}

// WriteEnvTemplate writes a .env with the resolver's variables left empty.
func WriteEnvTemplate(projectRoot string, overwrite bool) (string, error) {
	path := filepath.Join(projectRoot, ".env")

	if _, err := os.Stat(path); err == nil && !overwrite {
		return path, fmt.Errorf("%s: %w", path, domain.ErrAlreadyExists)
	}

	env := map[string]string{
		EnvPrivateKey:      "",
		EnvInfuraAPIKey:    "",
		EnvEtherscanAPIKey: "",
	}
	if err := godotenv.Write(env, path); err != nil {
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

// FindProjectRoot walks up from start looking for a project marker.
// It returns start when no marker is found.
func FindProjectRoot(start string) string {
	dir := start
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}
