package analytics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seriesWithActive(n int, active ...int) []DayPoint {
	points := make([]DayPoint, n)
	for _, i := range active {
		points[i].Value = 1
	}
	return points
}

func TestClassifyOnTrack_ContiguousWeekBlock(t *testing.T) {
	series := seriesWithActive(30, 10, 11, 12, 13, 14, 15, 16)
	got := ClassifyOnTrack(series, 7)

	assert.True(t, got[13])
	assert.False(t, got[3])
	for i := 10; i <= 16; i++ {
		assert.True(t, got[i], "day %d", i)
	}
	assert.False(t, got[9])
	assert.False(t, got[17])
}

func TestClassifyOnTrack_ShortSeriesIsNeverOnTrack(t *testing.T) {
	series := seriesWithActive(6, 0, 1, 2, 3, 4, 5)
	assert.Equal(t, []bool{false, false, false, false, false, false}, ClassifyOnTrack(series, 1))
	assert.Empty(t, ClassifyOnTrack(nil, 1))
}

func TestClassifyOnTrack_WindowsTouchingStart(t *testing.T) {
	series := seriesWithActive(30, 0, 1)
	got := ClassifyOnTrack(series, 2)
	for i := 0; i <= 6; i++ {
		assert.True(t, got[i], "day %d shares window [0,7)", i)
	}
	for i := 7; i < 30; i++ {
		assert.False(t, got[i], "day %d", i)
	}
}

func TestClassifyOnTrack_ActivityTooFarApart(t *testing.T) {
	got := ClassifyOnTrack(seriesWithActive(30, 0, 8), 2)
	for i, v := range got {
		assert.False(t, v, "day %d", i)
	}
}

func TestClassifyOnTrack_NonPositiveValuesAreInactive(t *testing.T) {
	series := make([]DayPoint, 7)
	for i := range series {
		series[i].Value = -1
	}
	series[3].Value = 0
	got := ClassifyOnTrack(series, 1)
	for i, v := range got {
		assert.False(t, v, "day %d", i)
	}
}

// naiveOnTrack checks every window containing i by slicing, as a reference.
func naiveOnTrack(series []DayPoint, target int) []bool {
	out := make([]bool, len(series))
	for i := range series {
		for w := i - 6; w <= i; w++ {
			if w < 0 || w+7 > len(series) {
				continue
			}
			count := 0
			for _, p := range series[w : w+7] {
				if p.Value > 0 {
					count++
				}
			}
			if count >= target {
				out[i] = true
				break
			}
		}
	}
	return out
}

func TestClassifyOnTrack_MatchesNaiveScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 500; trial++ {
		n := rng.Intn(40)
		series := make([]DayPoint, n)
		for i := range series {
			if rng.Float64() < 0.45 {
				series[i].Value = float64(1 + rng.Intn(50))
			}
		}
		target := 1 + rng.Intn(7)
		assert.Equal(t, naiveOnTrack(series, target), ClassifyOnTrack(series, target), "trial %d n=%d target=%d", trial, n, target)
	}
}
