package report

// Tally is a set of per-status counts over some group of rows. Evaluated
// counts rows with a defined sigma; PassRate is Pass over Evaluated and
// stays zero when nothing was evaluated.
type Tally struct {
	Checks    int     `json:"checks"`
	Pass      int     `json:"pass"`
	Marginal  int     `json:"marginal"`
	Tension   int     `json:"tension"`
	Fail      int     `json:"fail"`
	Missing   int     `json:"missing"`
	Invalid   int     `json:"invalid"`
	Evaluated int     `json:"evaluated"`
	PassRate  float64 `json:"pass_rate"`
}

func (t *Tally) add(s Status) {
	t.Checks++
	switch s {
	case StatusPass:
		t.Pass++
		t.Evaluated++
	case StatusMarginal:
		t.Marginal++
		t.Evaluated++
	case StatusTension:
		t.Tension++
		t.Evaluated++
	case StatusFail:
		t.Fail++
		t.Evaluated++
	case StatusMissing:
		t.Missing++
	case StatusInvalid:
		t.Invalid++
	}
}

func (t *Tally) finish() {
	if t.Evaluated > 0 {
		t.PassRate = float64(t.Pass) / float64(t.Evaluated)
	}
}

// SectorSummary is the tally of one sector.
type SectorSummary struct {
	Sector string `json:"sector"`
	Tally
}

// Summary aggregates the whole run plus a per-sector partition. Sectors
// appear in first-occurrence order of the rows.
type Summary struct {
	Tally
	Sectors []SectorSummary `json:"sectors,omitempty"`
}

// Summarize computes the aggregate statistics over rows.
func Summarize(rows []Row) Summary {
	var s Summary
	perSector := make(map[string]*Tally)
	var order []string

	for _, row := range rows {
		s.Tally.add(row.Status)
		t, ok := perSector[row.Sector]
		if !ok {
			t = &Tally{}
			perSector[row.Sector] = t
			order = append(order, row.Sector)
		}
		t.add(row.Status)
	}

	s.Tally.finish()
	for _, sector := range order {
		t := perSector[sector]
		t.finish()
		s.Sectors = append(s.Sectors, SectorSummary{Sector: sector, Tally: *t})
	}
	return s
}
