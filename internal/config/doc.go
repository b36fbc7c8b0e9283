// Package config loads Study Buddy configuration from the environment,
// optionally overlaid on a YAML config file.
//
// Every value has a hardcoded fallback default, so a development setup works
// with no configuration at all. Validate() reports every missing or invalid
// key in a single error so startup failures list the full set of problems.
package config
