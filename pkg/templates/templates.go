// Package templates keeps files that GNpest writes on the first run.
package templates

import _ "embed"

// ConfigYAML is the commented config.yaml placed into the config
// directory when the user has none. Its values mirror config.New().
//
//go:embed config.yaml
var ConfigYAML string
