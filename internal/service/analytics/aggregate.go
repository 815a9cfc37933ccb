package analytics_service

import (
	"sort"
	"strings"
	"volley-training/internal/models"
)

// successRate is Σsuccess/Σtotal, and 0 when nothing was attempted
func successRate(success, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(success) / float64(total)
}

type tally struct {
	success, total int
}

func (t *tally) add(f models.ResultFact) {
	t.success += f.SuccessCount
	t.total += f.TotalCount
}

// radarAxes gives one axis per category. A category without reps keeps a nil rate
// so a chart does not draw it as zero.
func radarAxes(categories []string, facts []models.ResultFact) []models.RadarAxis {
	byCategory := make(map[string]*tally)
	for _, c := range categories {
		byCategory[c] = &tally{}
	}
	for _, f := range facts {
		if f.Category == "" {
			continue
		}
		t, ok := byCategory[f.Category]
		if !ok {
			t = &tally{}
			byCategory[f.Category] = t
		}
		t.add(f)
	}

	names := make([]string, 0, len(byCategory))
	for c := range byCategory {
		names = append(names, c)
	}
	sort.Strings(names)

	axes := make([]models.RadarAxis, 0, len(names))
	for _, c := range names {
		t := byCategory[c]
		axis := models.RadarAxis{Category: c, SuccessCount: t.success, TotalReps: t.total}
		if t.total > 0 {
			r := successRate(t.success, t.total)
			axis.SuccessRate = &r
		}
		axes = append(axes, axis)
	}
	return axes
}

// trendPoints gives one point per session that has results, oldest session first
func trendPoints(facts []models.ResultFact) []models.TrendPoint {
	type bucket struct {
		date models.Date
		tally
	}
	sessions := make(map[int64]*bucket)
	for _, f := range facts {
		b, ok := sessions[f.SessionID]
		if !ok {
			b = &bucket{date: f.SessionDate}
			sessions[f.SessionID] = b
		}
		b.add(f)
	}

	points := make([]models.TrendPoint, 0, len(sessions))
	for id, b := range sessions {
		points = append(points, models.TrendPoint{
			SessionID:   id,
			SessionDate: b.date,
			SuccessRate: successRate(b.success, b.total),
			TotalReps:   b.total,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if !points[i].SessionDate.Equal(points[j].SessionDate.Time) {
			return points[i].SessionDate.Before(points[j].SessionDate.Time)
		}
		return points[i].SessionID < points[j].SessionID
	})
	return points
}

// timeShares splits planned minutes by drill or category, in order of first
// appearance in the plan. Drills are told apart by id since names may repeat.
func timeShares(slots []models.SlotFact, by string) []models.TimeShare {
	type shareKey struct {
		drillID  int64
		category string
	}
	index := make(map[shareKey]int)
	shares := []models.TimeShare{}
	total := 0

	for _, s := range slots {
		key := shareKey{drillID: s.DrillID}
		share := models.TimeShare{Key: s.DrillName, DrillID: s.DrillID}
		if by == models.ShareByCategory {
			key = shareKey{category: s.Category}
			share = models.TimeShare{Key: s.Category}
		}
		i, ok := index[key]
		if !ok {
			i = len(shares)
			index[key] = i
			shares = append(shares, share)
		}
		shares[i].Minutes += s.PlannedMinutes
		total += s.PlannedMinutes
	}

	if total > 0 {
		for i := range shares {
			shares[i].Share = float64(shares[i].Minutes) / float64(total)
		}
	}
	return shares
}

// rankErrors counts non-empty error types, most frequent first. Equal counts keep
// the order in which the types were first recorded.
func rankErrors(facts []models.ResultFact, topN int) []models.ErrorCount {
	index := make(map[string]int)
	ranking := []models.ErrorCount{}

	for _, f := range facts {
		e := strings.TrimSpace(f.ErrorType)
		if e == "" {
			continue
		}
		i, ok := index[e]
		if !ok {
			i = len(ranking)
			index[e] = i
			ranking = append(ranking, models.ErrorCount{ErrorType: e})
		}
		ranking[i].Count++
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	if topN > 0 && len(ranking) > topN {
		ranking = ranking[:topN]
	}
	return ranking
}

// drillRates lists drills with at least minReps attempts, weakest first
func drillRates(facts []models.ResultFact, minReps int) []models.DrillRate {
	type bucket struct {
		name, category string
		tally
	}
	drills := make(map[int64]*bucket)
	for _, f := range facts {
		b, ok := drills[f.DrillID]
		if !ok {
			b = &bucket{name: f.DrillName, category: f.Category}
			drills[f.DrillID] = b
		}
		b.add(f)
	}

	rates := []models.DrillRate{}
	for id, b := range drills {
		if b.total == 0 || b.total < minReps {
			continue
		}
		rates = append(rates, models.DrillRate{
			DrillID:      id,
			DrillName:    b.name,
			Category:     b.category,
			SuccessRate:  successRate(b.success, b.total),
			TotalActions: b.total,
		})
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].SuccessRate != rates[j].SuccessRate {
			return rates[i].SuccessRate < rates[j].SuccessRate
		}
		return rates[i].DrillID < rates[j].DrillID
	})
	return rates
}

// themeRates groups results by session theme, busiest theme first
func themeRates(facts []models.ResultFact) []models.ThemeRate {
	type bucket struct {
		sessions map[int64]bool
		tally
	}
	themes := make(map[string]*bucket)
	for _, f := range facts {
		b, ok := themes[f.Theme]
		if !ok {
			b = &bucket{sessions: make(map[int64]bool)}
			themes[f.Theme] = b
		}
		b.sessions[f.SessionID] = true
		b.add(f)
	}

	rates := make([]models.ThemeRate, 0, len(themes))
	for theme, b := range themes {
		rates = append(rates, models.ThemeRate{
			Theme:       theme,
			Sessions:    len(b.sessions),
			SuccessRate: successRate(b.success, b.total),
		})
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].Sessions != rates[j].Sessions {
			return rates[i].Sessions > rates[j].Sessions
		}
		return rates[i].Theme < rates[j].Theme
	})
	return rates
}
