package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/document"
	"github.com/jonathan/resume-optimizer/internal/extract"
)

var parseCommand = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Parse a resume and print the extracted record as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParseCmd,
}

var parseOmitText bool

func init() {
	parseCommand.Flags().BoolVar(&parseOmitText, "omit-text", false, "Omit the raw resume text from the output")
	rootCmd.AddCommand(parseCommand)
}

func runParseCmd(_ *cobra.Command, args []string) error {
	doc, err := document.ParseFile(args[0])
	if err != nil {
		return err
	}

	candidate := extract.Candidate(doc)
	if parseOmitText {
		candidate.Text = ""
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(candidate); err != nil {
		return fmt.Errorf("encoding candidate record: %w", err)
	}
	return nil
}
