package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/greerreNFL/nfelounits/internal/types"
)

// requiredColumns is the input table contract. Any missing column is a
// precondition violation.
var requiredColumns = []string{
	"game_id", "season", "week",
	"home_team", "away_team",
	"home_coach", "away_coach",
	"hfa_base",
	"home_qb_name", "home_qb_value",
	"away_qb_name", "away_qb_value",
	"result", "temp", "wind",
	"home_pass_epa", "home_rush_epa", "home_st_epa",
	"away_pass_epa", "away_rush_epa", "away_st_epa",
}

// LoadGames reads the flattened team-game table from a CSV file.
func LoadGames(path string) ([]types.GameRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening games file: %w", err)
	}
	defer f.Close()
	return ReadGames(f)
}

// ReadGames parses the flattened team-game table from a reader.
func ReadGames(r io.Reader) ([]types.GameRow, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading games header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("games file missing required column: %q", name)
		}
	}

	var rows []types.GameRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading games row %d: %w", line, err)
		}
		line++

		p := rowParser{record: record, cols: cols}
		row := types.GameRow{
			GameID:      p.str("game_id"),
			Season:      p.intval("season"),
			Week:        p.intval("week"),
			HomeTeam:    p.str("home_team"),
			AwayTeam:    p.str("away_team"),
			HomeCoach:   p.str("home_coach"),
			AwayCoach:   p.str("away_coach"),
			HFABase:     p.float("hfa_base"),
			HomeQBName:  p.str("home_qb_name"),
			HomeQBValue: p.float("home_qb_value"),
			AwayQBName:  p.str("away_qb_name"),
			AwayQBValue: p.float("away_qb_value"),
			Result:      p.float("result"),
			Temp:        p.nullableFloat("temp"),
			Wind:        p.nullableFloat("wind"),
			HomePassEPA: p.float("home_pass_epa"),
			HomeRushEPA: p.float("home_rush_epa"),
			HomeSTEPA:   p.float("home_st_epa"),
			AwayPassEPA: p.float("away_pass_epa"),
			AwayRushEPA: p.float("away_rush_epa"),
			AwaySTEPA:   p.float("away_st_epa"),
		}
		if p.err != nil {
			return nil, fmt.Errorf("parsing games row %d: %w", line, p.err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// rowParser accumulates the first parse error across a row's fields.
type rowParser struct {
	record []string
	cols   map[string]int
	err    error
}

func (p *rowParser) str(col string) string {
	return p.record[p.cols[col]]
}

func (p *rowParser) intval(col string) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(p.record[p.cols[col]])
	if err != nil {
		p.err = fmt.Errorf("column %q: %w", col, err)
	}
	return v
}

func (p *rowParser) float(col string) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(p.record[p.cols[col]], 64)
	if err != nil {
		p.err = fmt.Errorf("column %q: %w", col, err)
	}
	return v
}

func (p *rowParser) nullableFloat(col string) *float64 {
	if p.err != nil {
		return nil
	}
	raw := p.record[p.cols[col]]
	if raw == "" || raw == "NA" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.err = fmt.Errorf("column %q: %w", col, err)
		return nil
	}
	return &v
}
