package data

import (
	"fmt"
	"sort"

	"github.com/greerreNFL/nfelounits/internal/types"
)

// seasonsIn returns the distinct seasons in ascending order.
func seasonsIn(rows []types.GameRow) []int {
	seen := make(map[int]bool)
	for i := range rows {
		seen[rows[i].Season] = true
	}
	seasons := make([]int, 0, len(seen))
	for s := range seen {
		seasons = append(seasons, s)
	}
	sort.Ints(seasons)
	return seasons
}

// LabelTrainTest labels every row's DataSet field for a chronological
// train/test split. The full table is kept so EWMA state stays continuous;
// labels only control which records the optimizer objectives score. The
// last nTestSeasons seasons become the test set, and the first season can
// be excluded as EWMA warm-up.
func LabelTrainTest(rows []types.GameRow, nTestSeasons int, excludeFirstSeason bool) ([]types.GameRow, error) {
	seasons := seasonsIn(rows)
	if nTestSeasons < 0 {
		return nil, fmt.Errorf("negative test season count %d", nTestSeasons)
	}
	if len(seasons) <= nTestSeasons {
		return nil, fmt.Errorf("not enough seasons (%d) to hold out %d for testing", len(seasons), nTestSeasons)
	}

	firstSeason := seasons[0]
	// A zero holdout leaves every non-excluded season in training.
	testStart := seasons[len(seasons)-1] + 1
	if nTestSeasons > 0 {
		testStart = seasons[len(seasons)-nTestSeasons]
	}

	labeled := make([]types.GameRow, len(rows))
	copy(labeled, rows)
	for i := range labeled {
		switch {
		case labeled[i].Season >= testStart:
			labeled[i].DataSet = types.DataSetTest
		case excludeFirstSeason && labeled[i].Season == firstSeason:
			labeled[i].DataSet = types.DataSetExclude
		default:
			labeled[i].DataSet = types.DataSetTrain
		}
	}
	return labeled, nil
}

// LabelBySeason labels rows with a specific training cutoff: seasons at or
// before trainThroughSeason train, later seasons test.
func LabelBySeason(rows []types.GameRow, trainThroughSeason int, excludeFirstSeason bool) ([]types.GameRow, error) {
	seasons := seasonsIn(rows)
	if len(seasons) == 0 {
		return nil, fmt.Errorf("no seasons in input")
	}
	firstSeason := seasons[0]

	labeled := make([]types.GameRow, len(rows))
	copy(labeled, rows)
	for i := range labeled {
		switch {
		case labeled[i].Season > trainThroughSeason:
			labeled[i].DataSet = types.DataSetTest
		case excludeFirstSeason && labeled[i].Season == firstSeason:
			labeled[i].DataSet = types.DataSetExclude
		default:
			labeled[i].DataSet = types.DataSetTrain
		}
	}
	return labeled, nil
}
