package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

func appHome(appTag string) (a appPaths, err error) {
	a = appPaths{tag: appTag}
	a.home, err = os.UserHomeDir()
	if err != nil {
		a.home = ""
		return
	}
	return
}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, ".config")
	}
	return filepath.Join(c, strings.ToLower(a.tag))
}

func (a appPaths) LogDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "logs", strings.ToLower(a.tag))
}
