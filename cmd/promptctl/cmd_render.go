package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/futig/course-prompts/internal/entity"
	"github.com/spf13/cobra"
)

var (
	inputPath  string
	outputPath string
	rawOutput  bool
	exportFmt  string
)

// kindsCmd lists every prompt kind
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the prompt kinds that can be rendered",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, k := range newRegistry().Kinds() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

// renderCmd renders one prompt
var renderCmd = &cobra.Command{
	Use:   "render [kind]",
	Short: "Render a prompt from a JSON request",
	Long: `Renders the prompt for the given kind. The request body uses the same JSON
shape as the matching HTTP endpoint.

Example:
  echo '{"topic":"Plate tectonics"}' | promptctl render open_ended_test --raw`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

// exportCmd renders one prompt and writes it as a document
var exportCmd = &cobra.Command{
	Use:   "export [kind]",
	Short: "Render a prompt and export it as markdown, docx, pdf or yaml",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	for _, c := range []*cobra.Command{renderCmd, exportCmd} {
		c.Flags().StringVarP(&inputPath, "file", "f", "-", "Request JSON file, - for stdin")
		c.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
	}
	renderCmd.Flags().BoolVar(&rawOutput, "raw", false, "Print only the prompt text")
	exportCmd.Flags().StringVar(&exportFmt, "format", string(entity.FormatMarkdown), "Document format: markdown, docx, pdf or yaml")
}

func runRender(cmd *cobra.Command, args []string) error {
	out, err := render(cmd, entity.PromptKind(args[0]))
	if err != nil {
		return err
	}

	if rawOutput {
		text, ok := promptText(out)
		if !ok {
			return fmt.Errorf("%s was resolved without a prompt; drop --raw to see the result", args[0])
		}
		return writeOutput(cmd, []byte(text+"\n"))
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return writeOutput(cmd, append(data, '\n'))
}

func runExport(cmd *cobra.Command, args []string) error {
	kind := entity.PromptKind(args[0])
	format := entity.ExportFormat(exportFmt)
	if !format.IsValid() {
		return fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, exportFmt)
	}

	out, err := render(cmd, kind)
	if err != nil {
		return err
	}

	req, ok := exportRequest(kind, out)
	if !ok {
		return fmt.Errorf("%s was resolved without a prompt; nothing to export", kind)
	}

	doc, err := newUsecase().Export(commandContext(cmd), req, format)
	if err != nil {
		return err
	}
	return writeOutput(cmd, doc.Content)
}

func render(cmd *cobra.Command, kind entity.PromptKind) (any, error) {
	body, err := readInput(cmd)
	if err != nil {
		return nil, err
	}
	return newUsecase().Render(commandContext(cmd), kind, body)
}

func promptText(out any) (string, bool) {
	switch v := out.(type) {
	case *entity.RenderPromptResponse:
		return v.Prompt, true
	case *entity.CourseEditResponse:
		return v.Prompt, v.Mode == entity.CourseEditModePrompt
	default:
		return "", false
	}
}

func exportRequest(kind entity.PromptKind, out any) (*entity.ExportPromptRequest, bool) {
	switch v := out.(type) {
	case *entity.RenderPromptResponse:
		return &entity.ExportPromptRequest{Kind: v.Kind, Prompt: v.Prompt, Contract: &v.Contract}, true
	case *entity.CourseEditResponse:
		if v.Mode != entity.CourseEditModePrompt {
			return nil, false
		}
		return &entity.ExportPromptRequest{Kind: kind, Prompt: v.Prompt, Contract: v.Contract}, true
	default:
		return nil, false
	}
}

func readInput(cmd *cobra.Command) ([]byte, error) {
	if inputPath == "" || inputPath == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	return data, nil
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
