package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/workcal/internal/calendar"
	"go.uber.org/zap"
)

func verifyCmd() *cobra.Command {
	var year int
	var dir string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Сравнить сохранённый календарь с isdayoff.ru",
		RunE: func(cmd *cobra.Command, args []string) error {
			refURL := ""
			var refTTL time.Duration
			if cfg != nil {
				refURL = cfg.Reference.URL
				refTTL = cfg.Reference.GetCacheTTL()
				if year == 0 {
					year = cfg.Source.GetYear()
				}
			}
			if year == 0 {
				return fmt.Errorf("--year is required without a config file")
			}

			path := filepath.Join(outputDir(dir), calendar.YearFileName(year))
			extracted, err := calendar.LoadYearMap(path)
			if err != nil {
				return err
			}

			ref := calendar.NewReferenceCalendar(refURL, refTTL, logger)
			reference, err := ref.YearMap(cmd.Context(), year)
			if err != nil {
				return fmt.Errorf("failed to get reference calendar: %w", err)
			}

			mismatches, err := calendar.Diff(extracted, reference)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(mismatches) == 0 {
				outPrintf(w, "%d: совпадает с isdayoff.ru\n", year)
				return nil
			}

			logger.Warn("Extracted calendar differs from reference",
				zap.Int("year", year),
				zap.Int("mismatches", len(mismatches)))

			outPrintf(w, "%d: расхождений %d\n", year, len(mismatches))
			outPrintln(w, "  Дата        | Извлечено  | isdayoff.ru")
			for _, m := range mismatches {
				outPrintf(w, "  %s  | %-10s | %s\n", m.Date, m.Got, m.Want)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to verify (default: source.year or the current year)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory with calendar_YYYY.json files (default: output.dir)")

	return cmd
}
