package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/flowbaker/workflow-importer/pkg/blocks"
	"github.com/flowbaker/workflow-importer/pkg/importer/n8n"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewConvertCommand() *cobra.Command {
	var (
		outputPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert an n8n workflow export to the platform canvas format",
		Long: `Convert reads an n8n workflow export (from a file, or stdin when no
file is given), converts it and writes the result as JSON or YAML. By default
the output file name is derived from the workflow name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := ""
			if len(args) == 1 {
				inputPath = args[0]
			}

			return runConvert(inputPath, outputPath, format)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: derived from workflow name, \"-\" for stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")

	return cmd
}

func runConvert(inputPath, outputPath, format string) error {
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported output format %q", format)
	}

	data, err := readInput(inputPath)
	if err != nil {
		return err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("input is not valid JSON: %w", err)
	}

	if err := n8n.ValidateWorkflow(raw); err != nil {
		return err
	}

	workflow, err := n8n.DecodeWorkflow(data)
	if err != nil {
		return err
	}

	registry := blocks.NewRegistry()

	converter := n8n.NewConverter(n8n.ConverterDependencies{
		BlockRegistry:    registry,
		BlockTypeChecker: registry,
	})

	result, err := converter.Convert(workflow)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		log.Warn().Msg(warning)
	}

	var output []byte

	switch format {
	case "yaml":
		output, err = yaml.Marshal(result.Workflow)
	default:
		output, err = json.MarshalIndent(result.Workflow, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("failed to encode converted workflow: %w", err)
	}

	if outputPath == "" {
		outputPath = fmt.Sprintf("%s.%s", slug.Make(result.Workflow.State.Metadata.Name), format)
	}

	if outputPath == "-" {
		_, err = os.Stdout.Write(append(output, '\n'))

		return err
	}

	if err := os.WriteFile(outputPath, output, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	log.Info().
		Int("blocks", len(result.Workflow.State.Blocks)).
		Int("edges", len(result.Workflow.State.Edges)).
		Str("output", outputPath).
		Msg("Converted workflow")

	return nil
}

func readInput(inputPath string) ([]byte, error) {
	if inputPath == "" || inputPath == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	return data, nil
}
