package aoc

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// Config is read from $AOC_CONFIG, or ~/.config/aoc/config.toml if that
// is unset. A missing file means the defaults.
type Config struct {
	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string `toml:"session-file"`
	// InputDir is where fetched inputs are cached, as <year>/<day>.input.
	InputDir string `toml:"input-dir"`
}

func defaultConfig() Config {
	return Config{
		SessionFile: filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
		InputDir:    ".",
	}
}

func parseConfig(data string) (Config, error) {
	c := defaultConfig()
	md, err := toml.Decode(data, &c)
	if err != nil {
		return Config{}, err
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		var names []string
		for _, k := range keys {
			names = append(names, k.String())
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(names, ", "))
	}
	if strings.HasPrefix(c.SessionFile, "~/") {
		c.SessionFile = filepath.Join(os.Getenv("HOME"), c.SessionFile[2:])
	}
	return c, nil
}

func configPath() string {
	if p := os.Getenv("AOC_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "aoc", "config.toml")
}

var config = sync.OnceValue(func() Config {
	path := configPath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultConfig()
	}
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}
	c, err := parseConfig(string(data))
	if err != nil {
		log.Fatalf("parsing %s: %v", path, err)
	}
	return c
})
