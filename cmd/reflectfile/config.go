package main

import (
	"context"
	"fmt"

	"github.com/marijnvanwezel/reflection-file/inspector/graph"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// loadConfig decodes the YAML file at location over the default configuration
func loadConfig(ctx context.Context, fs afs.Service, location string) (*graph.Config, error) {
	config := graph.DefaultConfig()
	if location == "" {
		return config, nil
	}
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", location, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", location, err)
	}
	if len(config.Extensions) == 0 {
		config.Extensions = graph.DefaultConfig().Extensions
	}
	return config, nil
}
