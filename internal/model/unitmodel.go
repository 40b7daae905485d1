package model

import (
	"sort"
	"time"

	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/types"
	"github.com/greerreNFL/nfelounits/pkg/logger"
	"github.com/sirupsen/logrus"
)

// UnitModel is the sequential simulation driver. It owns all per-team and
// league state for one run; no other goroutine may touch that state while
// the run is in flight.
type UnitModel struct {
	games []types.GameRow
	cfg   config.Values

	teams    map[string]*Team
	league   *LeagueBaseline
	leagueQB *LeagueQb
	elo      *EloTranslator
	records  []types.TeamGameRecord

	Runtime time.Duration
	log     *logrus.Entry
}

// NewUnitModel creates a model over a copy of the input rows. Rows are
// sorted ascending by (season, week, game_id); the tie-break on game_id
// makes the ordering total, which the path-dependent state requires.
func NewUnitModel(games []types.GameRow, cfg config.Values) *UnitModel {
	sorted := make([]types.GameRow, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Season != sorted[j].Season {
			return sorted[i].Season < sorted[j].Season
		}
		if sorted[i].Week != sorted[j].Week {
			return sorted[i].Week < sorted[j].Week
		}
		return sorted[i].GameID < sorted[j].GameID
	})

	return &UnitModel{
		games: sorted,
		cfg:   cfg,
		log:   logger.WithComponent("unit_model"),
	}
}

// team returns the team for a code, creating it zero-initialized on first
// reference.
func (m *UnitModel) team(abbr string) *Team {
	t, ok := m.teams[abbr]
	if !ok {
		t = NewTeam(abbr, &m.cfg.Unit)
		m.teams[abbr] = t
	}
	return t
}

// Run executes the full simulation from a clean state.
func (m *UnitModel) Run() {
	start := time.Now()

	m.teams = make(map[string]*Team)
	m.records = make([]types.TeamGameRecord, 0, len(m.games)*2)
	m.league = NewLeagueBaseline(&m.cfg.Unit)
	m.leagueQB = NewLeagueQb(&m.cfg.Unit)
	m.elo = NewEloTranslator(m.cfg.Elo)

	for i := range m.games {
		m.processGame(&m.games[i])
	}

	m.Runtime = time.Since(start)
	m.log.WithFields(logrus.Fields{
		"games":      len(m.games),
		"teams":      len(m.teams),
		"runtime_ms": m.Runtime.Milliseconds(),
	}).Debug("model run complete")
}

// processGame advances state through one game and emits one record per team.
func (m *UnitModel) processGame(row *types.GameRow) {
	logger.WithGameContext(row.GameID, row.Season, row.Week).Trace("processing game")

	home := m.team(row.HomeTeam)
	away := m.team(row.AwayTeam)

	// Lock each season's Week 1 starter before regression so pass offense
	// regresses toward the QB the team actually enters the season with.
	homeQBAdj := home.QB.Adjustment(row.HomeQBName, row.HomeQBValue, row.Season)
	awayQBAdj := away.QB.Adjustment(row.AwayQBName, row.AwayQBValue, row.Season)

	leagueQBAvg := m.leagueQB.Avg()
	home.AdvanceToSeason(row.Season, row.HomeCoach, leagueQBAvg)
	away.AdvanceToSeason(row.Season, row.AwayCoach, leagueQBAvg)

	m.leagueQB.Update(row.HomeQBValue)
	m.leagueQB.Update(row.AwayQBValue)

	gc := NewGameContext(row, &m.cfg.Unit)

	// Pre-game Elo, context adjustment and win probability from the
	// regressed, not-yet-updated values.
	homeElo := m.elo.TranslateToElo(home)
	awayElo := m.elo.TranslateToElo(away)
	homeCtxAdj := m.elo.ContextAdj(home, gc)
	awayCtxAdj := m.elo.ContextAdj(away, gc)
	homeWinProb := MatchupWinProbability(
		homeElo, homeCtxAdj, homeQBAdj,
		awayElo, awayCtxAdj, awayQBAdj,
		row.HFABase,
	)

	homeRecord := types.TeamGameRecord{
		GameID: row.GameID, Season: row.Season, Week: row.Week,
		Team: row.HomeTeam, Opponent: row.AwayTeam, IsHome: true,
		Coach: row.HomeCoach, DataSet: row.DataSet, Result: row.Result,
		QBAdj: homeQBAdj, Elo: homeElo, ContextAdj: homeCtxAdj,
		WinProb: homeWinProb,
	}
	awayRecord := types.TeamGameRecord{
		GameID: row.GameID, Season: row.Season, Week: row.Week,
		Team: row.AwayTeam, Opponent: row.HomeTeam, IsHome: false,
		Coach: row.AwayCoach, DataSet: row.DataSet, Result: row.Result,
		QBAdj: awayQBAdj, Elo: awayElo, ContextAdj: awayCtxAdj,
		WinProb: 1 - homeWinProb,
	}

	for _, side := range types.Sides {
		for _, ut := range types.UnitTypes {
			homeRecord.Unit(ut, side).Pre = home.Unit(ut, side).Value
			awayRecord.Unit(ut, side).Pre = away.Unit(ut, side).Value
		}
	}

	for _, ut := range types.UnitTypes {
		leagueAvg := m.league.Avg(ut, row.Season)
		weatherAdj := gc.WeatherAdj(ut)

		homeOff := home.Unit(ut, types.SideOffense)
		homeDef := home.Unit(ut, types.SideDefense)
		awayOff := away.Unit(ut, types.SideOffense)
		awayDef := away.Unit(ut, types.SideDefense)

		// Snapshot opponent values before any of the four updates run so
		// none of the symmetric updates sees a post-update value.
		homeOffPre := homeOff.Value
		homeDefPre := homeDef.Value
		awayOffPre := awayOff.Value
		awayDefPre := awayDef.Value

		homeSit := GameSituation{
			HFAAdj:     gc.HFAAdj(ut, true),
			QBAdj:      homeQBAdj,
			OppQBAdj:   awayQBAdj,
			WeatherAdj: weatherAdj,
			LeagueAvg:  leagueAvg,
			IsHome:     true,
			Season:     row.Season,
			Coach:      row.HomeCoach,
		}
		awaySit := GameSituation{
			HFAAdj:     gc.HFAAdj(ut, false),
			QBAdj:      awayQBAdj,
			OppQBAdj:   homeQBAdj,
			WeatherAdj: weatherAdj,
			LeagueAvg:  leagueAvg,
			IsHome:     false,
			Season:     row.Season,
			Coach:      row.AwayCoach,
		}

		homeEPA := row.EPA(ut, true)
		awayEPA := row.EPA(ut, false)

		// Expected values are a property of pre-update state and must be
		// computed before any mutation.
		hOff := homeRecord.Unit(ut, types.SideOffense)
		hOff.Expected = homeOff.ExpectedEPA(awayDefPre, homeSit)
		hOff.Observed = homeEPA

		hDef := homeRecord.Unit(ut, types.SideDefense)
		hDef.Expected = homeDef.ExpectedEPA(awayOffPre, homeSit)
		hDef.Observed = awayEPA

		aOff := awayRecord.Unit(ut, types.SideOffense)
		aOff.Expected = awayOff.ExpectedEPA(homeDefPre, awaySit)
		aOff.Observed = awayEPA

		aDef := awayRecord.Unit(ut, types.SideDefense)
		aDef.Expected = awayDef.ExpectedEPA(homeOffPre, awaySit)
		aDef.Observed = homeEPA

		homeOff.Update(homeEPA, awayDefPre, homeSit)
		homeDef.Update(awayEPA, awayOffPre, homeSit)
		awayOff.Update(awayEPA, homeDefPre, awaySit)
		awayDef.Update(homeEPA, homeOffPre, awaySit)

		// League baseline trails the four unit updates so team expectations
		// above used the pre-game average.
		m.league.Update(ut, homeEPA, row.Season)
		m.league.Update(ut, awayEPA, row.Season)
	}

	for _, side := range types.Sides {
		for _, ut := range types.UnitTypes {
			homeRecord.Unit(ut, side).Post = home.Unit(ut, side).Value
			awayRecord.Unit(ut, side).Post = away.Unit(ut, side).Value
		}
	}

	m.records = append(m.records, homeRecord, awayRecord)
}

// Results returns the emitted team-game records in processing order.
func (m *UnitModel) Results() []types.TeamGameRecord {
	return m.records
}

// Teams returns the final per-team state keyed by team code.
func (m *UnitModel) Teams() map[string]*Team {
	return m.teams
}

// Translator returns the run's Elo translator.
func (m *UnitModel) Translator() *EloTranslator {
	return m.elo
}

// LeagueQBAvg returns the final league-average QB value.
func (m *UnitModel) LeagueQBAvg() float64 {
	return m.leagueQB.Avg()
}
