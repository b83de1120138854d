package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/mints/internal/mines"
)

// Seed returns the fixed RNG seed from MINTS_SEED. ok is false when the
// variable is unset, in which case rounds are seeded randomly.
func Seed() (seed uint64, ok bool, err error) {
	seedStr, ok := os.LookupEnv("MINTS_SEED")
	if !ok || seedStr == "" {
		return 0, false, nil
	}
	seed, err = strconv.ParseUint(seedStr, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("unable to parse MINTS_SEED: %w", err)
	}
	return seed, true, nil
}

// Difficulty returns the default preset from MINTS_DIFFICULTY, falling back
// to [mines.Easy].
func Difficulty() (mines.Difficulty, error) {
	name, ok := os.LookupEnv("MINTS_DIFFICULTY")
	if !ok || name == "" {
		return mines.Easy, nil
	}
	d, err := mines.ParseDifficulty(name)
	if err != nil {
		return mines.Easy, fmt.Errorf("MINTS_DIFFICULTY: %w", err)
	}
	return d, nil
}
