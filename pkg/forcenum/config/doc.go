/*
Package config provides forgiving value extraction from map[string]any.

# Overview

config wraps a map[string]any, as decoded from YAML or JSON, and provides
typed accessors that return default values for missing keys and unusable
values. Numeric accessors go through forcenum, so hand-edited files can say
"1.5k" or "$2,000" where a number is expected.

# Basic Usage

	cfg := config.New(map[string]any{
	    "table":      "orders",
	    "batch_size": "2k",
	    "budget":     "$1,250.50",
	    "dry_run":    true,
	})

	table := cfg.String("table", "")        // "orders"
	batch := cfg.Int("batch_size", 500)     // 2000
	budget := cfg.Float("budget", 0)        // 1250.5
	dryRun := cfg.Bool("dry_run", false)    // true
	limit := cfg.FloatOrNil("limit")        // nil

# Decimal Symbol

The decimal_symbol key selects the decimal point for numeric accessors of
configs loaded from files, and for any conversion that uses ConvertOptions:

	cfg, err := config.FromYAML([]byte(`
	decimal_symbol: ","
	threshold: "12,5"
	`))
	cfg.Float("threshold", 0)  // 12.5

	opts, err := cfg.ConvertOptions()
	forcenum.Convert("25,12K", opts...)  // 25120

An unusable symbol ("", "..", "5") is reported as an error wrapping
forcenum.ErrInvalidDecimalSymbol.

# Coercion Rules

  - Int: the numeric interpretation must be whole and fit in an int
  - Float, FloatOrNil: anything forcenum.Convert accepts
  - String, Bool: strict type match, no coercion

# File Loading

Load configuration from YAML or JSON files:

	cfg, err := config.FromFile("backfill.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	// Or load from bytes
	cfg, err = config.FromYAML(yamlBytes)
	cfg, err = config.FromJSON(jsonBytes)

Nested sections are reached with Section, which keeps the parent's options.

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation. However, if the original map is modified
externally, behavior is undefined.
*/
package config
