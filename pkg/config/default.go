package config

import (
	_ "embed"
	"fmt"
)

//go:embed default_showcase.yaml
var defaultShowcaseYAML []byte

// DefaultShowcaseConfig 返回嵌入的默认展示配置
func DefaultShowcaseConfig() (*ShowcaseConfig, error) {
	cfg, err := ParseShowcaseConfig(defaultShowcaseYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded showcase config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault path 为空时使用嵌入的默认配置
func LoadOrDefault(path string) (*ShowcaseConfig, error) {
	if path == "" {
		return DefaultShowcaseConfig()
	}
	return LoadShowcaseConfig(path)
}
