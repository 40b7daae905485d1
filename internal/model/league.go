package model

import (
	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/types"
)

// League baseline seeds: 1999 league-wide per-game EPA averages.
const (
	seedLeaguePassAvg = 0.721
	seedLeagueRushAvg = -3.911
	seedLeagueSTAvg   = 2.249
	seedLeagueQBAvg   = 75.0
)

// LeagueBaseline tracks league-wide average EPA per unit type with an EWMA.
// Each tracker carries a current and a long-term average; the current average
// regresses toward the long-term one exactly once per season boundary,
// lazily, mirroring the Unit regression contract at league scope.
type LeagueBaseline struct {
	passAvg float64
	rushAvg float64
	stAvg   float64

	passAvgLT float64
	rushAvgLT float64
	stAvgLT   float64

	lastGameSeason int
	cfg            *config.UnitConfig
}

// NewLeagueBaseline creates a baseline tracker seeded with the historical
// starting averages.
func NewLeagueBaseline(cfg *config.UnitConfig) *LeagueBaseline {
	return &LeagueBaseline{
		passAvg:   seedLeaguePassAvg,
		rushAvg:   seedLeagueRushAvg,
		stAvg:     seedLeagueSTAvg,
		passAvgLT: seedLeaguePassAvg,
		rushAvgLT: seedLeagueRushAvg,
		stAvgLT:   seedLeagueSTAvg,
		cfg:       cfg,
	}
}

// Update blends the unit type's average toward an observed game EPA. Called
// twice per game per unit type, once per team; the second call sees the
// first call's output.
func (b *LeagueBaseline) Update(ut types.UnitType, observedEPA float64, season int) {
	sf := b.cfg.LeagueSF(ut)
	switch ut {
	case types.UnitPass:
		b.passAvg = sf*observedEPA + (1-sf)*b.passAvg
	case types.UnitRush:
		b.rushAvg = sf*observedEPA + (1-sf)*b.rushAvg
	case types.UnitST:
		b.stAvg = sf*observedEPA + (1-sf)*b.stAvg
	}
	b.lastGameSeason = season
}

// regress blends each average toward its long-term counterpart, then locks
// the result in as the new long-term average.
func (b *LeagueBaseline) regress() {
	pr := b.cfg.LeaguePassReversion
	rr := b.cfg.LeagueRushReversion
	sr := b.cfg.LeagueSTReversion

	b.passAvg = (1-pr)*b.passAvg + pr*b.passAvgLT
	b.rushAvg = (1-rr)*b.rushAvg + rr*b.rushAvgLT
	b.stAvg = (1-sr)*b.stAvg + sr*b.stAvgLT

	b.passAvgLT = b.passAvg
	b.rushAvgLT = b.rushAvg
	b.stAvgLT = b.stAvg

	b.lastGameSeason = 0
}

// Avg returns the league average for a unit type, applying the offseason
// regression once if the season has advanced.
func (b *LeagueBaseline) Avg(ut types.UnitType, currentSeason int) float64 {
	if b.lastGameSeason != 0 && currentSeason > b.lastGameSeason {
		b.regress()
	}
	switch ut {
	case types.UnitPass:
		return b.passAvg
	case types.UnitRush:
		return b.rushAvg
	case types.UnitST:
		return b.stAvg
	}
	panic("unknown unit type " + string(ut))
}

// LeagueQb tracks the league-average QB value (Elo scale) with an EWMA.
// QB quality has no stationary mean, so there is no offseason regression.
type LeagueQb struct {
	avg float64
	cfg *config.UnitConfig
}

// NewLeagueQb creates a league QB tracker seeded at the historical average.
func NewLeagueQb(cfg *config.UnitConfig) *LeagueQb {
	return &LeagueQb{avg: seedLeagueQBAvg, cfg: cfg}
}

// Update blends the average toward an observed QB value.
func (q *LeagueQb) Update(observedQBValue float64) {
	sf := q.cfg.LeagueQBSF
	q.avg = sf*observedQBValue + (1-sf)*q.avg
}

// Avg returns the current league-average QB value.
func (q *LeagueQb) Avg() float64 {
	return q.avg
}
