package appconfig

import (
	"context"
	"os"
	"testing"

	"github.com/jamesrr39/goutil/logpkg"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadWithLookuper_Defaults(t *testing.T) {
	conf, err := LoadWithLookuper(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.Nil(t, err)

	assert.Equal(t, &Config{DefaultRoot: ".", DirMode: "0755", LogLevel: "info"}, conf)

	dirMode, err := conf.ParseDirMode()
	require.Nil(t, err)
	assert.Equal(t, os.FileMode(0755), dirMode)

	logLevel, err := conf.ParseLogLevel()
	require.Nil(t, err)
	assert.Equal(t, logpkg.LogLevelInfo, logLevel)
}

func Test_LoadWithLookuper(t *testing.T) {
	conf, err := LoadWithLookuper(context.Background(), envconfig.MapLookuper(map[string]string{
		"TREE_CREATOR_DEFAULT_ROOT": "/srv/trees",
		"TREE_CREATOR_DIR_MODE":     "700",
		"TREE_CREATOR_LOG_LEVEL":    "DEBUG",
	}))
	require.Nil(t, err)

	assert.Equal(t, "/srv/trees", conf.DefaultRoot)

	dirMode, err := conf.ParseDirMode()
	require.Nil(t, err)
	assert.Equal(t, os.FileMode(0700), dirMode)

	logLevel, err := conf.ParseLogLevel()
	require.Nil(t, err)
	assert.Equal(t, logpkg.LogLevelDebug, logLevel)
}

func Test_Config_ParseErrors(t *testing.T) {
	conf := &Config{DirMode: "rwx", LogLevel: "loud"}

	_, err := conf.ParseDirMode()
	assert.NotNil(t, err)

	_, err = conf.ParseLogLevel()
	assert.NotNil(t, err)
}
