package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lawlens/aknrender/internal/htmlout"
	"github.com/lawlens/aknrender/internal/source"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "aknrender",
		Short: "Structured legal-document renderer",
		Long: `aknrender converts Akoma Ntoso style legal markup (acts,
regulations, constitutional text) into a presentation-ready document tree,
preserving legal structure, numbering and inline formatting.

It also imports markdown drafts, docx uploads and pdf text into the same
document model.`,
		Version: version,
	}

	rootCmd.AddCommand(renderCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderCmd() *cobra.Command {
	var (
		format string
		size   string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a legal document to JSON or HTML",
		Long: `Render a legal document and print the result.

Supported inputs: Akoma Ntoso XML (.xml, .akn), Markdown (.md),
Word (.docx), PDF (.pdf).

Example:
  aknrender render act.xml
  aknrender render act.xml --format html --size large`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !source.IsSupportedExtension(path) {
				return fmt.Errorf("unsupported file type: %s", path)
			}
			src, err := source.ForFile(path)
			if err != nil {
				return err
			}
			if pdf, ok := src.(*source.PDFSource); ok {
				pdf.FallbackPdftotext = true
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			doc, err := src.Load(f, path)
			if err != nil {
				return fmt.Errorf("render %s: %w", path, err)
			}

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			case "html":
				fmt.Fprintln(cmd.OutOrStdout(), htmlout.Render(doc, htmlout.Size(size)))
				return nil
			default:
				return fmt.Errorf("unknown format %q (want json or html)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json or html")
	cmd.Flags().StringVar(&size, "size", "medium", "text size for html output: small, medium or large")
	return cmd
}
