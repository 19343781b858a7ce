package game

// TableSummary is one lobby row. A summary is created as soon as a table
// name shows up in a tables_list message and stays skeletal
// (HasInformation=false) until a table_info message fills it in.
type TableSummary struct {
	TableName      string
	SmallBlind     int
	BigBlind       int
	BuyIn          int
	MaxPlayers     int
	NumHumans      int
	NumBots        int
	HasInformation bool
}

// TableDetail carries the fields of a table_info message.
type TableDetail struct {
	TableName  string `json:"table_name"`
	SmallBlind int    `json:"small_blind"`
	BigBlind   int    `json:"big_blind"`
	BuyIn      int    `json:"buy_in"`
	MaxPlayers int    `json:"max_players"`
	NumHumans  int    `json:"num_humans"`
	NumBots    int    `json:"num_bots"`
}

// TableSummaries maps table name to summary. At most one entry per name.
type TableSummaries map[string]*TableSummary

// ApplyList reconciles the summaries with a fresh tables_list: unseen
// names get a skeletal entry, known names keep their detail fields, and
// names absent from the list are pruned.
func (t TableSummaries) ApplyList(names []string) {
	listed := make(map[string]bool, len(names))
	for _, name := range names {
		listed[name] = true
		if _, ok := t[name]; !ok {
			t[name] = &TableSummary{TableName: name}
		}
	}
	for name := range t {
		if !listed[name] {
			delete(t, name)
		}
	}
}

// ApplyDetail fills in a summary from a table_info message, creating the
// entry if the detail arrives before any list mentioning it.
func (t TableSummaries) ApplyDetail(detail TableDetail) {
	summary, ok := t[detail.TableName]
	if !ok {
		summary = &TableSummary{TableName: detail.TableName}
		t[detail.TableName] = summary
	}
	summary.SmallBlind = detail.SmallBlind
	summary.BigBlind = detail.BigBlind
	summary.BuyIn = detail.BuyIn
	summary.MaxPlayers = detail.MaxPlayers
	summary.NumHumans = detail.NumHumans
	summary.NumBots = detail.NumBots
	summary.HasInformation = true
}

// Known returns the summaries that have received their detail message,
// which is what a lobby listing renders.
func (t TableSummaries) Known() []TableSummary {
	known := make([]TableSummary, 0, len(t))
	for _, s := range t {
		if s.HasInformation {
			known = append(known, *s)
		}
	}
	return known
}
