package config

import (
	_ "embed"
)

//go:embed defaults/termtris.yaml
var defaultYAML []byte
