// Package config holds the toolchain configuration: which assembler to
// run and how to rewrite build paths in debug info. Configuration is
// read from a TOML file; the BUILD_PATH_PREFIX_MAP environment variable
// can add path rewrites on top for reproducible builds.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config describes the external toolchain.
type Config struct {
	// Asm is the assembler command.
	Asm string `toml:"asm"`
	// AsmFlags are passed to the assembler before any file arguments.
	AsmFlags []string `toml:"asm_flags"`
	// DebugPrefixMap lists "old=new" path rewrites to apply to debug
	// info, oldest first.
	DebugPrefixMap []string `toml:"debug_prefix_map"`
}

// Default returns the configuration used when no file is given: the
// system assembler in 64-bit mode.
func Default() *Config {
	return &Config{
		Asm:      "as",
		AsmFlags: []string{"-m", "64"},
	}
}

// Load reads a TOML configuration file. Keys missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaults := Default()
	if config.Asm == "" {
		config.Asm = defaults.Asm
	}
	if config.AsmFlags == nil {
		config.AsmFlags = defaults.AsmFlags
	}
	return &config, nil
}

// DebugPrefixMapFlags builds the --debug-prefix-map arguments for the
// assembler: the configured rewrites first, then any from the
// BUILD_PATH_PREFIX_MAP environment variable, so the environment wins.
func (c *Config) DebugPrefixMapFlags() []string {
	pairs := append([]string{}, c.DebugPrefixMap...)
	if env := os.Getenv("BUILD_PATH_PREFIX_MAP"); env != "" {
		pairs = append(pairs, parsePrefixMap(env)...)
	}

	var flags []string
	for _, pair := range pairs {
		if !strings.Contains(pair, "=") {
			continue
		}
		flags = append(flags, "--debug-prefix-map", pair)
	}
	return flags
}

// parsePrefixMap decodes a BUILD_PATH_PREFIX_MAP value: colon-separated
// "new=old" elements, with %-escapes for the separator characters.
// Returns "old=new" pairs in the order the assembler wants them.
func parsePrefixMap(env string) []string {
	var pairs []string
	for _, elem := range strings.Split(env, ":") {
		if elem == "" {
			continue
		}
		eq := findUnescapedEq(elem)
		if eq < 0 {
			continue
		}
		newPath := decodePrefixMapPart(elem[:eq])
		oldPath := decodePrefixMapPart(elem[eq+1:])
		pairs = append(pairs, oldPath+"="+newPath)
	}
	return pairs
}

func findUnescapedEq(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%':
			i++
		case '=':
			return i
		}
	}
	return -1
}

// decodePrefixMapPart resolves the escapes %# (=), %+ (:) and %. (%).
func decodePrefixMapPart(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case '#':
			b.WriteByte('=')
		case '+':
			b.WriteByte(':')
		case '.':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
