package repository

import (
	"strings"
	"volley-training/internal/models"
)

// Where accumulates AND-ed conditions with their positional arguments.
// Conditions use ? placeholders; Rebind the final query.
type Where struct {
	conds []string
	args  []interface{}
}

func (w *Where) Add(cond string, args ...interface{}) *Where {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
	return w
}

// Range adds inclusive bounds on a date column, skipping open ends
func (w *Where) Range(column string, r models.DateRange) *Where {
	if !r.From.IsZero() {
		w.Add(column+" >= ?", r.From)
	}
	if !r.To.IsZero() {
		w.Add(column+" <= ?", r.To)
	}
	return w
}

func (w *Where) SQL() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func (w *Where) Args() []interface{} {
	return w.args
}

// FactWhere renders a FactFilter against a fact table aliased as alias joined with
// sessions s and drills d. PlayerID is ignored when the fact table has no player.
func FactWhere(f models.FactFilter, alias string, hasPlayer bool) *Where {
	w := &Where{}
	w.Range("s.session_date", f.Range)
	if f.SessionID != nil {
		w.Add(alias+".session_id = ?", *f.SessionID)
	}
	if f.PlayerID != nil && hasPlayer {
		w.Add(alias+".player_id = ?", *f.PlayerID)
	}
	if f.DrillID != nil {
		w.Add(alias+".drill_id = ?", *f.DrillID)
	}
	if f.Category != "" {
		w.Add("d.category = ?", f.Category)
	}
	return w
}
