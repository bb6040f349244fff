package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/auctioncrawl/internal/config"
	"github.com/nao1215/auctioncrawl/internal/extract"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed templates/auctioncrawl.yaml
var configTemplate []byte

// configFileName is the default configuration file name.
const configFileName = config.DefaultConfigFile

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new auctioncrawl configuration file",
		Long: `Initialize creates a new .auctioncrawl configuration file in the current directory.

The generated file includes:
- The default category list page, listing base URL and product marker
- Commented examples for cookies, headers and User-Agent

Examples:
  # Create .auctioncrawl in current directory
  auctioncrawl init

  # Create the config file in the XDG config directory
  auctioncrawl init --xdg

  # Create config file at a specific path
  auctioncrawl init -o myconfig.yaml

  # Force overwrite existing file
  auctioncrawl init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().Bool("xdg", false,
		"Write to the XDG config directory instead of --output")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	useXDG, err := cmd.Flags().GetBool("xdg")
	if err != nil {
		return err
	}
	if useXDG {
		outputPath = config.XDGConfigFile()
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	if err := checkTemplate(configTemplate); err != nil {
		return fmt.Errorf("invalid config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// The file may hold session cookies.
	if err := os.WriteFile(outputPath, configTemplate, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to configure:")
	fmt.Fprintln(out, "  - The category list page and listing base URL")
	fmt.Fprintln(out, "  - The product link marker")
	fmt.Fprintln(out, "  - Cookies, headers and User-Agent sent with each request")

	return nil
}

// checkTemplate verifies that the template parses and carries a usable marker.
func checkTemplate(content []byte) error {
	var file config.File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return err
	}
	_, err := extract.NewProductExtractor(file.Endpoints.ProductMarker)
	return err
}
