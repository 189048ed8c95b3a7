package analytics

// ClassifyOnTrack marks day i on track when some full 7-day window inside
// the series that contains i has at least targetDaysPerWeek active days.
// Days near either end with no full window are never on track.
func ClassifyOnTrack(series []DayPoint, targetDaysPerWeek int) []bool {
	n := len(series)
	onTrack := make([]bool, n)
	if n < WeekDays {
		return onTrack
	}

	// active[k] counts days with activity in series[:k].
	active := make([]int, n+1)
	for i, p := range series {
		active[i+1] = active[i]
		if p.Value > 0 {
			active[i+1]++
		}
	}

	for i := range series {
		for w := max(0, i-WeekDays+1); w <= i && w+WeekDays <= n; w++ {
			if active[w+WeekDays]-active[w] >= targetDaysPerWeek {
				onTrack[i] = true
				break
			}
		}
	}
	return onTrack
}
