package config

import _ "embed"

// DefaultConfigYAML 内置默认配置，外部配置文件和环境变量可覆盖其中任意项
//
//go:embed default_config.yaml
var DefaultConfigYAML []byte
