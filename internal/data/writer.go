package data

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/greerreNFL/nfelounits/internal/types"
)

// resultColumns is the stable output column order.
var resultColumns = []string{
	"game_id", "season", "week", "team", "opponent", "is_home", "coach",
	"elo", "qb_adj", "context_adj", "win_prob",
	"pass_off_value_pre", "pass_def_value_pre",
	"rush_off_value_pre", "rush_def_value_pre",
	"st_off_value_pre", "st_def_value_pre",
	"pass_off_value_post", "pass_def_value_post",
	"rush_off_value_post", "rush_def_value_post",
	"st_off_value_post", "st_def_value_post",
	"pass_off_expected", "pass_off_observed",
	"pass_def_expected", "pass_def_observed",
	"rush_off_expected", "rush_off_observed",
	"rush_def_expected", "rush_def_observed",
	"st_off_expected", "st_off_observed",
	"st_def_expected", "st_def_observed",
}

// Round4 rounds to 4 decimal places, the precision of the output contract.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// WriteResultsCSV saves team-game records to a CSV file, rounded to 4
// decimal places.
func WriteResultsCSV(path string, records []types.TeamGameRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(resultColumns); err != nil {
		return fmt.Errorf("writing results header: %w", err)
	}

	fmtF := func(v float64) string {
		return strconv.FormatFloat(Round4(v), 'f', -1, 64)
	}

	for i := range records {
		r := &records[i]
		row := []string{
			r.GameID,
			strconv.Itoa(r.Season),
			strconv.Itoa(r.Week),
			r.Team,
			r.Opponent,
			strconv.FormatBool(r.IsHome),
			r.Coach,
			fmtF(r.Elo),
			fmtF(r.QBAdj),
			fmtF(r.ContextAdj),
			fmtF(r.WinProb),
		}
		for _, ut := range types.UnitTypes {
			for _, side := range types.Sides {
				row = append(row, fmtF(r.Unit(ut, side).Pre))
			}
		}
		for _, ut := range types.UnitTypes {
			for _, side := range types.Sides {
				row = append(row, fmtF(r.Unit(ut, side).Post))
			}
		}
		for _, ut := range types.UnitTypes {
			for _, side := range types.Sides {
				u := r.Unit(ut, side)
				row = append(row, fmtF(u.Expected), fmtF(u.Observed))
			}
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing results row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
