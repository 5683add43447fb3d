package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

type envKind int

const (
	envString envKind = iota
	envInt
	envBool
)

type envBinding struct {
	name string
	key  string
	kind envKind
}

// Environment variables that override preferences
var envBindings = []envBinding{
	{"SNAPSHOT_TOKENS_BASE_URL", KeyTokensBaseURL, envString},
	{"SNAPSHOT_CATEGORIES_URL", KeyCategoriesURL, envString},
	{"SNAPSHOT_DISCOVER_CATEGORIES", KeyDiscoverCategories, envBool},
	{"SNAPSHOT_SEARCH_DELAY_MS", KeySearchDelayMS, envInt},
	{"SNAPSHOT_HTTP_TIMEOUT_SEC", KeyHTTPTimeoutSec, envInt},
	{"SNAPSHOT_VIRTUALIZE_THRESHOLD", KeyVirtualizeThreshold, envInt},
	{"SNAPSHOT_MAX_PARALLEL_LOGOS", KeyMaxParallelLogos, envInt},
}

// DefaultEnvFile is loaded when present and no file is named explicitly
const DefaultEnvFile = ".env"

// LoadEnvFile loads variables from path into the process environment without
// replacing ones already set. With an empty path DefaultEnvFile is tried and
// its absence is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnv overrides settings from SNAPSHOT_* variables. Values that do not
// parse are skipped with a warning. It returns the number of applied overrides.
func ApplyEnv(s *Settings) int {
	return applyEnv(s, os.LookupEnv)
}

func applyEnv(s *Settings, lookup func(string) (string, bool)) int {
	applied := 0
	for _, b := range envBindings {
		raw, ok := lookup(b.name)
		if !ok {
			continue
		}
		value := strings.TrimSpace(raw)

		switch b.kind {
		case envInt:
			if _, err := strconv.Atoi(value); err != nil {
				log.Warn("ignoring environment value", "name", b.name, "value", raw, "err", err)
				continue
			}
		case envBool:
			if _, err := strconv.ParseBool(value); err != nil {
				log.Warn("ignoring environment value", "name", b.name, "value", raw, "err", err)
				continue
			}
		default:
			if value == "" {
				continue
			}
		}

		s.Override(b.key, value)
		log.Debug("environment override", "name", b.name, "key", b.key)
		applied++
	}
	return applied
}
