package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kutsal/dayscore/internal/tracker"
)

type jsonExport struct {
	ExportedAt string    `json:"exported_at"`
	Count      int       `json:"count"`
	Days       []jsonDay `json:"days"`
}

type jsonDay struct {
	Date            string `json:"date"`
	WorkDone        int    `json:"work_done"`
	WorkTarget      int    `json:"work_target"`
	Bedtime         string `json:"bedtime,omitempty"`
	BedtimeNextDay  bool   `json:"bedtime_next_day,omitempty"`
	TargetBedtime   string `json:"target_bedtime"`
	BalancePoints   int    `json:"balance_points"`
	HalflifeMinutes int    `json:"halflife_minutes"`
	Score           int    `json:"score"`
}

func ToJSON(days []tracker.DayCell, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, d := range days {
		r := d.Record
		if r == nil {
			continue
		}
		day := jsonDay{
			Date:            d.Date.Format("2006-01-02"),
			WorkDone:        r.ActualWorkCount,
			WorkTarget:      r.Goals.TargetWorkCount,
			TargetBedtime:   r.Goals.TargetBedtime.String(),
			BalancePoints:   r.Goals.WorkSleepBalance,
			HalflifeMinutes: r.Goals.BedtimeHalflife,
			Score:           r.Score(),
		}
		if r.ActualBedtime != nil {
			day.Bedtime = fmt.Sprintf("%02d:%02d", r.ActualBedtime.Minutes/60, r.ActualBedtime.Minutes%60)
			day.BedtimeNextDay = r.ActualBedtime.NextDay
		}
		out.Days = append(out.Days, day)
	}
	out.Count = len(out.Days)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
