// Package main provides the CLI entrypoint for linkml-openapi.
//
// linkml-openapi turns a LinkML schema into an OpenAPI 3.1 document:
//   - Parses the schema YAML (classes, slots, enums, annotations)
//   - Builds a JSON Schema component for every class and enum
//   - Derives CRUD paths for resource classes from openapi.* annotations
//   - Serializes the document as YAML or JSON
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linkml-openapi/internal/config"
	"linkml-openapi/internal/diagnostic"
	"linkml-openapi/internal/gen"
	"linkml-openapi/internal/model"
	"linkml-openapi/internal/openapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command with environment-driven flag defaults,
// so an explicit flag always wins over LINKML_OPENAPI_* variables.
func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkml-openapi <schema.yaml>",
		Short: "Generate an OpenAPI 3.1 specification from a LinkML schema",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(cmd, args[0]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringP("format", "f", cfg.Format, "Output format, yaml or json")
	cmd.Flags().String("title", "", "API title (default: schema name)")
	cmd.Flags().String("version", cfg.Version, "API version")
	cmd.Flags().String("server-url", cfg.ServerURL, "Server base URL")
	cmd.Flags().StringSlice("classes", nil, "Only generate endpoints for these classes (default: auto-detect)")
	cmd.Flags().Bool("debug", cfg.Debug, "Also print info-level generator notices")

	return cmd
}

func run(cmd *cobra.Command, schemaPath string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	formatName, _ := cmd.Flags().GetString("format")
	title, _ := cmd.Flags().GetString("title")
	version, _ := cmd.Flags().GetString("version")
	serverURL, _ := cmd.Flags().GetString("server-url")
	classes, _ := cmd.Flags().GetStringSlice("classes")
	debug, _ := cmd.Flags().GetBool("debug")

	format, err := openapi.ParseFormat(formatName)
	if err != nil {
		return err
	}

	file, err := model.LoadFile(schemaPath)
	if err != nil {
		return err
	}
	view, err := model.NewView(file)
	if err != nil {
		return err
	}

	generator := gen.New(view, gen.Config{
		Title:     title,
		Version:   version,
		ServerURL: serverURL,
		Format:    format,
		Classes:   classes,
	})

	data, err := generator.Serialize()
	if err != nil {
		return err
	}

	diags := generator.Diagnostics()
	reportDiagnostics(diags, debug)
	if err := diags.Error(); err != nil {
		return err
	}

	return gen.WriteOutput(outputPath, data)
}

// reportDiagnostics prints warnings to stderr. Info-level notices only
// show up in debug mode.
func reportDiagnostics(diags *diagnostic.Diagnostics, debug bool) {
	for _, d := range diags.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}

	if !debug {
		return
	}
	for _, d := range diags.Infos {
		fmt.Fprintf(os.Stderr, "info: %s\n", d)
	}
}
