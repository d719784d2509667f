// Package configloader discovers and loads the binpatch configuration file.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/binpatch/pkg/config"
)

// DefaultFileName is the configuration file looked for in the working
// directory when no explicit path is given.
const DefaultFileName = ".binpatch.yaml"

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "BINPATCH_CONFIG"

// ErrConfig wraps all configuration loading and validation failures so the
// CLI can map them to a dedicated exit code.
var ErrConfig = errors.New("config error")

// LoadOptions controls configuration discovery.
type LoadOptions struct {
	// WorkingDir is where the default config file is looked for. Empty
	// means the process working directory.
	WorkingDir string

	// ExplicitPath is the --config flag value. When set, the file must
	// exist; with discovery, a missing file just yields the defaults.
	ExplicitPath string
}

// Result carries the loaded configuration and where it came from.
type Result struct {
	Config *config.Config

	// LoadedFrom is the path of the config file that was read, empty when
	// the defaults were used.
	LoadedFrom string
}

// Load resolves the configuration: explicit path, then $BINPATCH_CONFIG,
// then WorkingDir/.binpatch.yaml, then built-in defaults.
func Load(ctx context.Context, opts LoadOptions) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrConfig, ctx.Err())
	default:
	}

	path, required := resolvePath(opts)
	if path == "" {
		return &Result{Config: config.Default()}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return &Result{Config: config.Default()}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	return &Result{Config: cfg, LoadedFrom: path}, nil
}

// resolvePath picks the config file path and whether it must exist.
func resolvePath(opts LoadOptions) (path string, required bool) {
	if opts.ExplicitPath != "" {
		return opts.ExplicitPath, true
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, true
	}
	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", false
		}
		workDir = wd
	}
	return filepath.Join(workDir, DefaultFileName), false
}
