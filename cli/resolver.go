package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/cyld/log"
)

// resolve returns a [kong.ConfigurationLoader] for YAML configuration files.
// Flag values are read from the mapping named section:
//
//	config:
//	  grammar: ./syntax.yaml
//	  grammar-path: /usr/share/cyl:/opt/cyl
//	  log-level: debug
//	  log-pretty: false
//
// Keys may use hyphens or underscores. A malformed file is ignored with a
// warning so that it never prevents the command line from being parsed.
// Command-line flags override config file values.
func resolve(section string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]map[string]any

		err := yaml.NewDecoder(r).Decode(&doc)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warn("ignoring malformed configuration file",
					slog.String("error", err.Error()),
				)
			}

			return config{}, nil
		}

		values := make(config, len(doc[section]))
		for key, val := range doc[section] {
			values[key] = flagString(val)
		}

		return values, nil
	}
}

// config implements [kong.Resolver] for YAML configuration files.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys may use
	// underscores. Try both forms.
	for _, name := range []string{
		flag.Name,
		strings.ReplaceAll(flag.Name, "-", "_"),
	} {
		if value, ok := r[name]; ok {
			return value, nil
		}
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagString converts a decoded YAML value into the form kong parses.
// Booleans are kept; numbers become strings; sequences are joined with
// commas, kong's default separator.
func flagString(v any) any {
	switch v := v.(type) {
	case nil, bool, string:
		return v

	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = fmt.Sprint(e)
		}

		return strings.Join(parts, ",")

	default:
		return fmt.Sprint(v)
	}
}
