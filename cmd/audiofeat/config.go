package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-audiofeatures/extract"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the audiofeat configuration file",
}

var configForce bool

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Long: `Write a configuration file populated with the default settings, ready
to edit. Without a path argument the file is written as audiofeat.yaml
in the current directory, where every audiofeat run picks it up.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false,
		"overwrite an existing config file")
}

type fileConfig struct {
	Verbose bool          `yaml:"verbose"`
	Extract extractConfig `yaml:"extract"`
}

type extractConfig struct {
	SampleRate    float64  `yaml:"sample_rate"`
	Format        string   `yaml:"format"`
	Stats         []string `yaml:"stats"`
	Extractors    []string `yaml:"extractors"`
	MonoDuplicate bool     `yaml:"mono_duplicate"`
}

func defaultConfig() fileConfig {
	return fileConfig{
		Extract: extractConfig{
			Format:     "csv",
			Stats:      extract.DefaultStats(),
			Extractors: catalogNames(extract.Catalog()),
		},
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "audiofeat.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	if !configForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("# audiofeat configuration\n")
	buf.WriteString("# Flags and AUDIOFEAT_* environment variables override these values.\n")
	buf.Write(data)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
