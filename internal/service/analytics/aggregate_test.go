package analytics_service

import (
	"math"
	"testing"
	"volley-training/internal/models"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func fact(session int64, day int, drill int64, category string, player int64, success, total int, errType string) models.ResultFact {
	return models.ResultFact{
		SessionID:    session,
		SessionDate:  models.NewDate(2024, 12, day),
		DrillID:      drill,
		DrillName:    category + " drill",
		Category:     category,
		PlayerID:     player,
		SuccessCount: success,
		TotalCount:   total,
		ErrorType:    errType,
	}
}

func TestSuccessRate(t *testing.T) {
	if successRate(0, 0) != 0 {
		t.Error("no attempts should give 0")
	}
	if !approx(successRate(20, 22), 20.0/22.0) {
		t.Error("rate is success over total")
	}
}

func TestRadarAxes(t *testing.T) {
	facts := []models.ResultFact{
		fact(1, 8, 1, "serve_receive", 1, 18, 20, ""),
		fact(2, 12, 1, "serve_receive", 1, 2, 2, ""),
		fact(2, 12, 3, "attack_chain", 1, 0, 0, ""),
	}
	axes := radarAxes([]string{"serve", "serve_receive", "attack_chain"}, facts)

	if len(axes) != 3 {
		t.Fatalf("axes = %+v", axes)
	}
	byCategory := map[string]models.RadarAxis{}
	for _, a := range axes {
		byCategory[a.Category] = a
	}
	if axes[0].Category != "attack_chain" || axes[2].Category != "serve_receive" {
		t.Errorf("axes not sorted: %+v", axes)
	}

	sr := byCategory["serve_receive"]
	if sr.SuccessRate == nil || !approx(*sr.SuccessRate, 20.0/22.0) || sr.TotalReps != 22 {
		t.Errorf("serve_receive = %+v", sr)
	}
	if byCategory["serve"].SuccessRate != nil {
		t.Error("category without results should have no rate")
	}
	if byCategory["attack_chain"].SuccessRate != nil {
		t.Error("zero attempts should have no rate")
	}
}

func TestTrendPointsOrdered(t *testing.T) {
	facts := []models.ResultFact{
		fact(3, 15, 1, "serve", 1, 5, 10, ""),
		fact(1, 8, 1, "serve", 1, 8, 10, ""),
		fact(3, 15, 2, "defense", 2, 5, 10, ""),
		fact(2, 12, 1, "serve", 1, 0, 0, ""),
	}
	points := trendPoints(facts)

	if len(points) != 3 {
		t.Fatalf("points = %+v", points)
	}
	for i := 1; i < len(points); i++ {
		if points[i].SessionDate.Before(points[i-1].SessionDate.Time) {
			t.Errorf("points out of order: %+v", points)
		}
	}
	if !approx(points[0].SuccessRate, 0.8) || points[1].SuccessRate != 0 || !approx(points[2].SuccessRate, 0.5) {
		t.Errorf("rates = %+v", points)
	}
	if points[2].TotalReps != 20 {
		t.Errorf("session 3 reps = %d, want 20", points[2].TotalReps)
	}
}

func TestTimeShares(t *testing.T) {
	slots := []models.SlotFact{
		{SessionID: 1, DrillID: 1, DrillName: "D1", Category: "defense", PlannedMinutes: 20},
		{SessionID: 1, DrillID: 2, DrillName: "D2", Category: "serve", PlannedMinutes: 30},
	}

	shares := timeShares(slots, models.ShareByDrill)
	if len(shares) != 2 || shares[0].Key != "D1" || shares[0].DrillID != 1 {
		t.Fatalf("shares = %+v", shares)
	}
	if !approx(shares[0].Share, 0.4) || !approx(shares[1].Share, 0.6) {
		t.Errorf("shares = %+v, want 0.4 and 0.6", shares)
	}

	slots = append(slots, models.SlotFact{SessionID: 2, DrillID: 3, DrillName: "D3", Category: "defense", PlannedMinutes: 50})
	byCategory := timeShares(slots, models.ShareByCategory)
	if len(byCategory) != 2 || byCategory[0].Key != "defense" || byCategory[0].Minutes != 70 || byCategory[0].DrillID != 0 {
		t.Errorf("by category = %+v", byCategory)
	}
	sum := 0.0
	for _, s := range byCategory {
		sum += s.Share
	}
	if !approx(sum, 1) {
		t.Errorf("shares sum to %v", sum)
	}

	sameName := timeShares([]models.SlotFact{
		{SessionID: 1, DrillID: 1, DrillName: "Pepper", Category: "defense", PlannedMinutes: 20},
		{SessionID: 1, DrillID: 2, DrillName: "Pepper", Category: "defense", PlannedMinutes: 30},
	}, models.ShareByDrill)
	if len(sameName) != 2 || sameName[0].DrillID != 1 || sameName[1].DrillID != 2 {
		t.Fatalf("drills sharing a name = %+v, want one share each", sameName)
	}
	if sameName[0].Minutes != 20 || !approx(sameName[0].Share, 0.4) || !approx(sameName[1].Share, 0.6) {
		t.Errorf("drills sharing a name = %+v, want 0.4 and 0.6", sameName)
	}

	unplanned := timeShares([]models.SlotFact{{DrillID: 1, DrillName: "D1"}}, models.ShareByDrill)
	if len(unplanned) != 1 || unplanned[0].Share != 0 {
		t.Errorf("no planned minutes = %+v", unplanned)
	}
	if got := timeShares(nil, models.ShareByDrill); len(got) != 0 {
		t.Errorf("empty plan = %+v", got)
	}
}

func TestRankErrors(t *testing.T) {
	facts := []models.ResultFact{
		fact(1, 8, 1, "serve", 1, 1, 2, "toss"),
		fact(1, 8, 1, "serve", 2, 1, 2, " late footwork "),
		fact(1, 8, 1, "serve", 1, 1, 2, ""),
		fact(2, 12, 1, "serve", 1, 1, 2, "late footwork"),
		fact(2, 12, 1, "serve", 2, 1, 2, "net"),
	}

	ranking := rankErrors(facts, 0)
	want := []models.ErrorCount{
		{ErrorType: "late footwork", Count: 2},
		{ErrorType: "toss", Count: 1},
		{ErrorType: "net", Count: 1},
	}
	if len(ranking) != len(want) {
		t.Fatalf("ranking = %+v", ranking)
	}
	for i := range want {
		if ranking[i] != want[i] {
			t.Errorf("ranking[%d] = %+v, want %+v", i, ranking[i], want[i])
		}
	}

	if top := rankErrors(facts, 1); len(top) != 1 || top[0].ErrorType != "late footwork" {
		t.Errorf("top 1 = %+v", top)
	}
}

func TestDrillRates(t *testing.T) {
	facts := []models.ResultFact{
		fact(1, 8, 1, "serve", 1, 27, 30, ""),
		fact(1, 8, 2, "defense", 1, 15, 30, ""),
		fact(1, 8, 3, "attack_chain", 1, 1, 10, ""),
	}

	rates := drillRates(facts, 30)
	if len(rates) != 2 {
		t.Fatalf("rates = %+v", rates)
	}
	if rates[0].DrillID != 2 || !approx(rates[0].SuccessRate, 0.5) || rates[1].DrillID != 1 {
		t.Errorf("want weakest first, got %+v", rates)
	}

	if all := drillRates(facts, 0); len(all) != 3 || all[0].DrillID != 3 {
		t.Errorf("minReps 0 = %+v", all)
	}
}

func TestThemeRates(t *testing.T) {
	facts := []models.ResultFact{
		{SessionID: 1, Theme: "Serve", SuccessCount: 8, TotalCount: 10},
		{SessionID: 2, Theme: "Serve", SuccessCount: 2, TotalCount: 10},
		{SessionID: 3, Theme: "Attack chain", SuccessCount: 9, TotalCount: 10},
	}

	rates := themeRates(facts)
	if len(rates) != 2 || rates[0].Theme != "Serve" || rates[0].Sessions != 2 || !approx(rates[0].SuccessRate, 0.5) {
		t.Errorf("rates = %+v", rates)
	}
}
