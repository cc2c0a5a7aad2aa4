package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(configFileName)
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && a.cfgFile == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// bindFlags copies config and environment values into flags the user did not
// set explicitly. Explicit flags always win.
func (a *app) bindFlags(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed || f.Name == "config" || f.Name == "help" {
			return
		}

		// Config files may spell keys as log-level, log_level or logLevel.
		key, ok := a.configKey(f.Name)
		if !ok {
			return
		}

		val := a.v.Get(key)
		if slice, isSlice := f.Value.(pflag.SliceValue); isSlice {
			if err := slice.Replace(toStringSlice(val)); err != nil {
				bindErr = fmt.Errorf("config %s: %w", key, err)
				return
			}
			f.Changed = true
			return
		}

		str, err := cast.ToStringE(val)
		if err != nil {
			bindErr = fmt.Errorf("config %s: %w", key, err)
			return
		}
		if err := cmd.Flags().Set(f.Name, str); err != nil {
			bindErr = fmt.Errorf("config %s: %w", key, err)
		}
	})
	return bindErr
}

func (a *app) configKey(flagName string) (string, bool) {
	candidates := []string{
		flagName,
		strings.ReplaceAll(flagName, "-", "_"),
		strings.ReplaceAll(flagName, "-", ""),
	}
	for _, key := range candidates {
		if a.v.IsSet(key) {
			return key, true
		}
	}
	return "", false
}

// toStringSlice accepts YAML sequences as well as comma separated strings
// coming from the environment.
func toStringSlice(val any) []string {
	if raw, ok := val.(string); ok {
		var out []string
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return cast.ToStringSlice(val)
}
