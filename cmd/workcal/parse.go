package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/workcal/internal/parser"
	"github.com/username/workcal/internal/source"
	"github.com/username/workcal/internal/workcal"
)

func parseCmd() *cobra.Command {
	var input string
	var year int
	var dir string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Разобрать сохранённый текст или HTML без загрузки",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			text := string(data)
			if isHTML(input, data) {
				text, err = source.ExtractText(bytes.NewReader(data))
				if err != nil {
					return err
				}
			}

			svc := workcal.NewService(nil, parser.NewParser(logger), logger)
			result := svc.ParseText(text, year)

			path := ""
			if !dryRun {
				path, err = svc.Save(outputDir(dir), result)
				if err != nil {
					return fmt.Errorf("failed to save calendar: %w", err)
				}
			}

			printResult(cmd.OutOrStdout(), result, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Text or HTML file with the document")
	cmd.Flags().IntVar(&year, "year", 0, "Year to use when the text names none")
	cmd.Flags().StringVarP(&dir, "output-dir", "o", "", "Directory for calendar_YYYY.json (default: output.dir)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the result without writing a file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func isHTML(path string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte("<"))
}
