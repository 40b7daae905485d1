package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greerreNFL/nfelounits/internal/types"
)

func seasonRows(seasons ...int) []types.GameRow {
	rows := make([]types.GameRow, len(seasons))
	for i, s := range seasons {
		rows[i] = types.GameRow{Season: s}
	}
	return rows
}

func labelsBySeason(rows []types.GameRow) map[int]string {
	out := make(map[int]string)
	for _, r := range rows {
		out[r.Season] = r.DataSet
	}
	return out
}

func TestLabelTrainTest(t *testing.T) {
	rows := seasonRows(1999, 2000, 2001, 2002, 2003, 2003)

	labeled, err := LabelTrainTest(rows, 2, true)
	require.NoError(t, err)
	require.Len(t, labeled, len(rows))

	labels := labelsBySeason(labeled)
	assert.Equal(t, types.DataSetExclude, labels[1999], "first season is EWMA warm-up")
	assert.Equal(t, types.DataSetTrain, labels[2000])
	assert.Equal(t, types.DataSetTrain, labels[2001])
	assert.Equal(t, types.DataSetTest, labels[2002])
	assert.Equal(t, types.DataSetTest, labels[2003])

	// The input is untouched.
	assert.Empty(t, rows[0].DataSet)
}

func TestLabelTrainTestKeepsFirstSeasonWhenAsked(t *testing.T) {
	labeled, err := LabelTrainTest(seasonRows(1999, 2000, 2001), 1, false)
	require.NoError(t, err)

	labels := labelsBySeason(labeled)
	assert.Equal(t, types.DataSetTrain, labels[1999])
	assert.Equal(t, types.DataSetTest, labels[2001])
}

func TestLabelTrainTestZeroHoldout(t *testing.T) {
	labeled, err := LabelTrainTest(seasonRows(1999, 2000, 2001), 0, true)
	require.NoError(t, err)

	labels := labelsBySeason(labeled)
	assert.Equal(t, types.DataSetExclude, labels[1999])
	assert.Equal(t, types.DataSetTrain, labels[2000])
	assert.Equal(t, types.DataSetTrain, labels[2001])
}

func TestLabelTrainTestInsufficientSeasons(t *testing.T) {
	_, err := LabelTrainTest(seasonRows(2020, 2021), 2, true)
	assert.ErrorContains(t, err, "not enough seasons")

	_, err = LabelTrainTest(seasonRows(2020), -1, false)
	assert.Error(t, err)
}

func TestLabelBySeason(t *testing.T) {
	labeled, err := LabelBySeason(seasonRows(1999, 2005, 2010, 2015), 2010, true)
	require.NoError(t, err)

	labels := labelsBySeason(labeled)
	assert.Equal(t, types.DataSetExclude, labels[1999])
	assert.Equal(t, types.DataSetTrain, labels[2005])
	assert.Equal(t, types.DataSetTrain, labels[2010])
	assert.Equal(t, types.DataSetTest, labels[2015])
}

func TestLabelBySeasonEmptyInput(t *testing.T) {
	_, err := LabelBySeason(nil, 2010, false)
	assert.Error(t, err)
}
