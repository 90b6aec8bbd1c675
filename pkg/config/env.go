package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvDensity  = "VEILAR_DENSITY"
	EnvLogLevel = "VEILAR_LOG_LEVEL"
)

// Env holds overrides taken from the process environment.
type Env struct {
	// Density replaces the sheet density when positive.
	Density float64
	// LogLevel is a zerolog level name. Empty keeps the default.
	LogLevel string
}

// LoadEnv loads the given dotenv files, if they exist, into the process
// environment and then reads the VEILAR_ variables. Variables already set
// in the environment win over the files.
func LoadEnv(files ...string) (Env, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return Env{}, configError("config.LoadEnv", fmt.Errorf("load %s: %w", f, err))
		}
	}

	env := Env{LogLevel: strings.TrimSpace(os.Getenv(EnvLogLevel))}
	if raw := strings.TrimSpace(os.Getenv(EnvDensity)); raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil || d <= 0 {
			return Env{}, configError("config.LoadEnv", fmt.Errorf("%s=%q is not a positive number", EnvDensity, raw))
		}
		env.Density = d
	}
	return env, nil
}

// Apply overrides sheet settings with env.
func (e Env) Apply(s *Sheet) {
	if e.Density > 0 {
		s.Density = e.Density
	}
}
