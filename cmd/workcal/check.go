package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/workcal/internal/calendar"
	"github.com/username/workcal/pkg/dateutil"
	"go.uber.org/zap"
)

func checkCmd() *cobra.Command {
	var dir string
	var month bool

	cmd := &cobra.Command{
		Use:   "check [YYYY-MM-DD]",
		Short: "Проверить, рабочий ли день, по сохранённым календарям",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := dateutil.Today()
			if len(args) == 1 {
				var err error
				day, err = dateutil.ParseDate(args[0])
				if err != nil {
					return err
				}
			}

			cal := calendar.NewCompositeCalendar(
				calendar.NewFileCalendar(outputDir(dir), logger),
				calendar.NewWeekendCalendar(),
				logger,
			)
			if err := cal.LoadPrimary(); err != nil {
				logger.Warn("No extracted calendars, using weekends only", zap.Error(err))
			}

			w := cmd.OutOrStdout()

			if month {
				info, err := cal.GetMonthInfo(day.Year, day.Month)
				if err != nil {
					return fmt.Errorf("failed to get month info: %w", err)
				}
				outPrintf(w, "%04d-%02d: рабочих %d, выходных %d, праздничных %d\n",
					info.Year, int(info.Month), info.WorkDays, info.Weekends, info.Holidays)
				for _, d := range info.Days {
					outPrintf(w, "  %s  %3d  %s\n", d.Date, d.YearDay, statusLabel(d.IsWorkday))
				}
				return nil
			}

			info, err := cal.GetDayInfo(day.Time())
			if err != nil {
				return fmt.Errorf("failed to get day info: %w", err)
			}
			outPrintf(w, "%s (день %d): %s, %s\n", info.Date, info.YearDay, statusLabel(info.IsWorkday), info.Type)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory with calendar_YYYY.json files (default: output.dir)")
	cmd.Flags().BoolVar(&month, "month", false, "Print the whole month")

	return cmd
}

func statusLabel(isWorkday bool) calendar.DayStatus {
	if isWorkday {
		return calendar.StatusWorking
	}
	return calendar.StatusNonWorking
}
