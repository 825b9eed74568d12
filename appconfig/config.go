package appconfig

import (
	"context"
	"os"
	"strings"

	"github.com/jamesrr39/directory-tree-creator/buildplan"
	"github.com/jamesrr39/goutil/errorsx"
	"github.com/jamesrr39/goutil/logpkg"
	"github.com/sethvargo/go-envconfig"
)

// Config holds the defaults that can be set through the environment.
// Command line flags take precedence over all of them.
type Config struct {
	DefaultRoot string `env:"DEFAULT_ROOT, default=."`
	DirMode     string `env:"DIR_MODE, default=0755"`
	LogLevel    string `env:"LOG_LEVEL, default=info"`
}

type envConfig struct {
	Config Config `env:",prefix=TREE_CREATOR_"`
}

func Load(ctx context.Context) (*Config, error) {
	return LoadWithLookuper(ctx, envconfig.OsLookuper())
}

// LoadWithLookuper is Load with the environment lookups going through lookuper
func LoadWithLookuper(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var conf envConfig
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &conf,
		Lookuper: lookuper,
	})
	if nil != err {
		return nil, errorsx.Wrap(err)
	}

	return &conf.Config, nil
}

func (c *Config) ParseDirMode() (os.FileMode, errorsx.Error) {
	return buildplan.ParseDirMode(c.DirMode)
}

func (c *Config) ParseLogLevel() (logpkg.LogLevel, errorsx.Error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return logpkg.LogLevelDebug, nil
	case "info":
		return logpkg.LogLevelInfo, nil
	case "warn", "warning":
		return logpkg.LogLevelWarn, nil
	case "error":
		return logpkg.LogLevelError, nil
	default:
		return 0, errorsx.Errorf("unknown log level %q. Valid log levels: debug, info, warn, error", c.LogLevel)
	}
}
