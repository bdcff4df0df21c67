package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChartSeries(t *testing.T) {
	newest := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	oldest := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []*MetricRow{
		{AdID: "ad-1", Timestamp: newest, CTR: ptr(0.01234), VCR: nil, CPM: ptr(12.5)},
		{AdID: "ad-1", Timestamp: oldest, CTR: ptr(0.02), VCR: ptr(0.755), CPM: nil},
	}

	points := BuildChartSeries(rows)
	require.Len(t, points, 2)

	assert.Equal(t, oldest, points[0].Timestamp)
	assert.Equal(t, 2.0, *points[0].CTR)
	assert.Equal(t, 75.5, *points[0].VCR)
	assert.Nil(t, points[0].CPM)

	assert.Equal(t, newest, points[1].Timestamp)
	assert.Equal(t, 1.23, *points[1].CTR)
	assert.Nil(t, points[1].VCR)
	assert.Equal(t, 12.5, *points[1].CPM)
}

func TestParseTimeBucket(t *testing.T) {
	bucket, err := ParseTimeBucket("weekly")
	assert.NoError(t, err)
	assert.Equal(t, TimeBucketWeekly, bucket)

	_, err = ParseTimeBucket("yearly")
	assert.Error(t, err)
}
