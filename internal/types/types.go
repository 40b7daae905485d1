package types

import "fmt"

// UnitType identifies one of the three rated phases of play.
type UnitType string

const (
	UnitPass UnitType = "pass"
	UnitRush UnitType = "rush"
	UnitST   UnitType = "st"
)

// UnitTypes lists all unit types in processing order.
var UnitTypes = []UnitType{UnitPass, UnitRush, UnitST}

// ParseUnitType validates a raw unit type string.
func ParseUnitType(s string) (UnitType, error) {
	switch UnitType(s) {
	case UnitPass, UnitRush, UnitST:
		return UnitType(s), nil
	}
	return "", fmt.Errorf("invalid unit type: %q", s)
}

// Side identifies offense or defense.
type Side string

const (
	SideOffense Side = "off"
	SideDefense Side = "def"
)

// Sides lists both sides in processing order.
var Sides = []Side{SideOffense, SideDefense}

// ParseSide validates a raw side string.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideOffense, SideDefense:
		return Side(s), nil
	}
	return "", fmt.Errorf("invalid side: %q", s)
}

// DataSet labels used by the chronological train/test splitter.
const (
	DataSetExclude = "exclude"
	DataSetTrain   = "train"
	DataSetTest    = "test"
)

// GameRow is one game of the flattened team-game input table. Rows are
// produced by an external data-preparation step; the engine treats the
// schema as a fixed contract.
type GameRow struct {
	GameID    string `json:"game_id"`
	Season    int    `json:"season"`
	Week      int    `json:"week"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeCoach string `json:"home_coach"`
	AwayCoach string `json:"away_coach"`

	HFABase float64 `json:"hfa_base"`

	HomeQBName  string  `json:"home_qb_name"`
	HomeQBValue float64 `json:"home_qb_value"`
	AwayQBName  string  `json:"away_qb_name"`
	AwayQBValue float64 `json:"away_qb_value"`

	// Result is home score minus away score.
	Result float64 `json:"result"`

	// Temp and Wind are nil when the source has no reading (domes).
	Temp *float64 `json:"temp"`
	Wind *float64 `json:"wind"`

	HomePassEPA float64 `json:"home_pass_epa"`
	HomeRushEPA float64 `json:"home_rush_epa"`
	HomeSTEPA   float64 `json:"home_st_epa"`
	AwayPassEPA float64 `json:"away_pass_epa"`
	AwayRushEPA float64 `json:"away_rush_epa"`
	AwaySTEPA   float64 `json:"away_st_epa"`

	// DataSet is attached by the splitter ("exclude", "train", "test").
	DataSet string `json:"data_set,omitempty"`
}

// EPA returns the row's aggregated EPA for one team side and unit type.
func (r *GameRow) EPA(ut UnitType, home bool) float64 {
	if home {
		switch ut {
		case UnitPass:
			return r.HomePassEPA
		case UnitRush:
			return r.HomeRushEPA
		case UnitST:
			return r.HomeSTEPA
		}
	} else {
		switch ut {
		case UnitPass:
			return r.AwayPassEPA
		case UnitRush:
			return r.AwayRushEPA
		case UnitST:
			return r.AwaySTEPA
		}
	}
	panic(fmt.Sprintf("unknown unit type %q", ut))
}

// UnitValues holds a pre/post/expected/observed quad for one unit.
type UnitValues struct {
	Pre      float64 `json:"pre"`
	Post     float64 `json:"post"`
	Expected float64 `json:"expected"`
	Observed float64 `json:"observed"`
}

// TeamGameRecord is one emitted row per team per game.
type TeamGameRecord struct {
	GameID   string `json:"game_id"`
	Season   int    `json:"season"`
	Week     int    `json:"week"`
	Team     string `json:"team"`
	Opponent string `json:"opponent"`
	IsHome   bool   `json:"is_home"`
	Coach    string `json:"coach"`
	DataSet  string `json:"data_set,omitempty"`

	QBAdj      float64 `json:"qb_adj"`
	Elo        float64 `json:"elo"`
	ContextAdj float64 `json:"context_adj"`
	WinProb    float64 `json:"win_prob"`

	// Result is home score minus away score, carried for scoring.
	Result float64 `json:"result"`

	PassOff UnitValues `json:"pass_off"`
	RushOff UnitValues `json:"rush_off"`
	STOff   UnitValues `json:"st_off"`
	PassDef UnitValues `json:"pass_def"`
	RushDef UnitValues `json:"rush_def"`
	STDef   UnitValues `json:"st_def"`
}

// Unit returns a pointer to the record's value quad for one unit.
func (r *TeamGameRecord) Unit(ut UnitType, side Side) *UnitValues {
	switch {
	case ut == UnitPass && side == SideOffense:
		return &r.PassOff
	case ut == UnitRush && side == SideOffense:
		return &r.RushOff
	case ut == UnitST && side == SideOffense:
		return &r.STOff
	case ut == UnitPass && side == SideDefense:
		return &r.PassDef
	case ut == UnitRush && side == SideDefense:
		return &r.RushDef
	case ut == UnitST && side == SideDefense:
		return &r.STDef
	}
	panic(fmt.Sprintf("unknown unit %q %q", ut, side))
}
