package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Stock defaults, matching the generator script's own flag defaults.
const (
	DefaultOutputDir = "/tmp/java_api/"
	DefaultSitePath  = "java/api_docs/java"
)

// Config holds all CLI options for a docs build run.
type Config struct {
	OutputDir          string
	SitePath           string
	TensorFlowJavaRepo string // path to a local tensorflow/java checkout; empty = generator clones it
	Verbose            bool
}

// File is an optional YAML file supplying defaults for flags the user did
// not set explicitly on the command line.
type File struct {
	OutputDir          string `yaml:"output_dir"`
	SitePath           string `yaml:"site_path"`
	TensorFlowJavaRepo string `yaml:"tensorflow_java_repo"`
}

// Load reads flag defaults from the given YAML file. Environment variables
// in the file content are expanded before parsing.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var f File
	if err := yaml.Unmarshal([]byte(expanded), &f); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &f, nil
}
