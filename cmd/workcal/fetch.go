package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/username/workcal/internal/parser"
	"github.com/username/workcal/internal/source"
	"github.com/username/workcal/internal/workcal"
	"go.uber.org/zap"
)

func fetchCmd() *cobra.Command {
	var year int
	var dir string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Скачать постановление и сохранить календарь года",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if year == 0 {
				year = cfg.Source.GetYear()
			}
			url := cfg.Source.URLForYear(year)

			fetcher := source.NewHTTPFetcher(
				cfg.Source.GetTimeout(),
				cfg.Source.UserAgent,
				cfg.Source.Cookies,
				logger,
			)
			svc := workcal.NewService(fetcher, parser.NewParser(logger), logger)

			logger.Info("Starting fetch",
				zap.String("url", url),
				zap.Int("year_hint", year))

			result, err := svc.ParseCalendar(cmd.Context(), url, year)
			if err != nil {
				return err
			}

			path, err := svc.Save(outputDir(dir), result)
			if err != nil {
				return fmt.Errorf("failed to save calendar: %w", err)
			}

			printResult(cmd.OutOrStdout(), result, path)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to fetch (default: source.year or the current year)")
	cmd.Flags().StringVarP(&dir, "output-dir", "o", "", "Directory for calendar_YYYY.json (default: output.dir)")

	return cmd
}

// printResult prints the summary and the recognized constructions
func printResult(w io.Writer, result *workcal.Result, path string) {
	first, _ := result.Days.Status(1)

	outPrintf(w, "Год: %d\n", result.Year)
	outPrintf(w, "Пример: 1 января — %s\n", first)
	outPrintf(w, "Нерабочих дней: %d (праздничных и перенесённых: %d)\n",
		result.Days.NonWorkingDays(), len(result.NonWorking))
	if path != "" {
		outPrintf(w, "Сохранено: %s\n", path)
	}

	if len(result.Notes) > 0 {
		outPrintln(w, "Найденные конструкции:")
		for _, note := range result.Notes {
			outPrintf(w, "- %s\n", note)
		}
	}
}
