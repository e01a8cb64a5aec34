// meta/meta.go
package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// WALLS defines the number of walls each player starts with.
const WALLS = 10

// GO_ROUTINES defines the number of goroutines to use for playouts.
const GO_ROUTINES = 8

// EPISODES defines the number of playouts per simulation.
const EPISODES = 1000

// WITH_CUTOFF defines the playout depth after which a playout counts as undecided.
const WITH_CUTOFF = 200

// MAX_TURNS caps the length of a match.
const MAX_TURNS = 300

// Environment keys read by Load.
const (
	EnvWalls      = "QUORIDOR_WALLS"
	EnvGoroutines = "QUORIDOR_GOROUTINES"
	EnvEpisodes   = "QUORIDOR_EPISODES"
	EnvDuration   = "QUORIDOR_DURATION"
	EnvCutoff     = "QUORIDOR_CUTOFF"
	EnvMaxTurns   = "QUORIDOR_MAX_TURNS"
	EnvSeed       = "QUORIDOR_SEED"
	EnvLogLevel   = "QUORIDOR_LOG_LEVEL"
	EnvOutputDir  = "QUORIDOR_OUTPUT_DIR"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Walls      int
	Goroutines int
	Episodes   int
	Duration   time.Duration
	Cutoff     int
	MaxTurns   int
	Seed       uint64
	LogLevel   zerolog.Level
	OutputDir  string
}

func Default() Config {
	return Config{
		Walls:      WALLS,
		Goroutines: GO_ROUTINES,
		Episodes:   EPISODES,
		Cutoff:     WITH_CUTOFF,
		MaxTurns:   MAX_TURNS,
		Seed:       1,
		LogLevel:   zerolog.InfoLevel,
		OutputDir:  "experiments",
	}
}

// Load starts from the defaults, applies the given dotenv files (".env" when none are named) and
// finally the process environment. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	values := map[string]string{}
	for _, file := range files {
		read, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("failed to read %s: %w", file, err)
		}
		for k, v := range read {
			values[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	c := Default()
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWalls, &c.Walls},
		{EnvGoroutines, &c.Goroutines},
		{EnvEpisodes, &c.Episodes},
		{EnvCutoff, &c.Cutoff},
		{EnvMaxTurns, &c.MaxTurns},
	}
	for _, field := range ints {
		v, ok := lookup(field.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, field.key, v)
		}
		*field.dst = n
	}

	if v, ok := lookup(EnvDuration); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvDuration, v)
		}
		c.Duration = d
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvLogLevel); ok {
		level, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvLogLevel, v)
		}
		c.LogLevel = level
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		c.OutputDir = v
	}

	if c.Goroutines == 0 {
		return Config{}, fmt.Errorf("%w: at least one goroutine is required", ErrInvalidConfig)
	}
	return c, nil
}
