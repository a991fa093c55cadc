package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/calcwerk/apl360"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate apl360 configuration with an application-key of 'APL360' and
	// use YAML-format for config-files
	konf := koanfadapter.New(k, "APL360", []string{"yml", "yaml"})
	konf.InitDefaults()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"eval.maxdepth": 32,
	}, "."), nil); err != nil {
		tracing.Errorf(err.Error())
		apl360.Exit(1)
	}
	paths := locatePaths()
	loadConfigFile(konf, paths)
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		apl360.Exit(1)
	}
	if err := configureTracing(konf, paths); err != nil {
		tracing.Errorf(err.Error())
		apl360.Exit(1)
	}
	apl360.Configuration = k // push the configuration to app-global scope
}

// loadConfigFile merges an optional apl360.yml/.yaml file from the user's
// config directory. A missing file is not an error.
func loadConfigFile(konf *koanfadapter.KConf, paths AppPaths) {
	if paths.ConfigDir() == "" {
		return
	}
	for _, suffix := range []string{"yml", "yaml"} {
		cfg := filepath.Join(paths.ConfigDir(), "apl360."+suffix)
		if _, err := os.Stat(cfg); err != nil {
			continue
		}
		if err := konf.Koanf().Load(file.Provider(cfg), yaml.Parser()); err != nil {
			tracing.Errorf("cannot load config file %s: %v", cfg, err)
		}
		return
	}
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return err
}

func configureTracing(konf *koanfadapter.KConf, paths AppPaths) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths.ConfigDir() != "" {
			dest = "file://" + paths.ConfigDir() + "/" + dest
			konf.Set("tracing.destination", dest)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func locatePaths() AppPaths {
	paths, err := DefaultAppPaths("APL360")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
