package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/kutsal/dayscore/internal/tracker"
)

func ToCSV(days []tracker.DayCell, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Date", "Work Done", "Work Target", "Bedtime", "Next Day", "Score"}); err != nil {
		return err
	}

	for _, d := range days {
		r := d.Record
		if r == nil {
			continue
		}
		bedtime := ""
		nextDay := ""
		if r.ActualBedtime != nil {
			bedtime = fmt.Sprintf("%02d:%02d", r.ActualBedtime.Minutes/60, r.ActualBedtime.Minutes%60)
			nextDay = fmt.Sprintf("%t", r.ActualBedtime.NextDay)
		}

		row := []string{
			d.Date.Format("2006-01-02"),
			fmt.Sprintf("%d", r.ActualWorkCount),
			fmt.Sprintf("%d", r.Goals.TargetWorkCount),
			bedtime,
			nextDay,
			fmt.Sprintf("%d", r.Score()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
