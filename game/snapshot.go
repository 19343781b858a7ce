package game

// Street names as they appear on the wire.
const (
	StreetPreflop  string = "preflop"
	StreetFlop     string = "flop"
	StreetTurn     string = "turn"
	StreetRiver    string = "river"
	StreetShowdown string = "showdown"
)

// Player actions as they appear on the wire.
const (
	ActionFold  string = "fold"
	ActionCheck string = "check"
	ActionCall  string = "call"
	ActionBet   string = "bet"
)

// Seat is one occupied seat inside a Snapshot. It lives exactly as long as
// the snapshot that carries it.
type Seat struct {
	Index        int    `json:"index"`
	PlayerName   string `json:"player_name"`
	Money        int    `json:"money"`
	LastAction   string `json:"last_action,omitempty"`
	IsActive     bool   `json:"is_active"`
	IsSittingOut bool   `json:"is_sitting_out,omitempty"`
	IsAllIn      bool   `json:"is_all_in,omitempty"`
	PreflopCont  int    `json:"preflop_cont,omitempty"`
	FlopCont     int    `json:"flop_cont,omitempty"`
	TurnCont     int    `json:"turn_cont,omitempty"`
	RiverCont    int    `json:"river_cont,omitempty"`
	// HoleCards is only populated by the server in all-in situations,
	// where every remaining hand is face up.
	HoleCards string `json:"hole_cards,omitempty"`
}

// Folded reports whether the seat is out of the current hand.
func (s *Seat) Folded() bool {
	return s.LastAction == ActionFold
}

// TotalContributed is the seat's cumulative contribution across all streets.
func (s *Seat) TotalContributed() int {
	return s.PreflopCont + s.FlopCont + s.TurnCont + s.RiverCont
}

// StreetContribution is what the seat has put in on the given street.
func (s *Seat) StreetContribution(street string) int {
	switch street {
	case StreetPreflop:
		return s.PreflopCont
	case StreetFlop:
		return s.FlopCont
	case StreetTurn:
		return s.TurnCont
	case StreetRiver:
		return s.RiverCont
	}
	return 0
}

// Snapshot is the authoritative table state at a point in time. The server
// replaces it wholesale on every game_state message; the client never
// mutates one after publication, so readers can hold a pointer across a
// frame without locking.
type Snapshot struct {
	Name           string  `json:"name"`
	MaxPlayers     int     `json:"max_players"`
	SmallBlind     int     `json:"small_blind"`
	BigBlind       int     `json:"big_blind"`
	BuyIn          int     `json:"buy_in"`
	HandNum        int     `json:"hand_num"`
	ButtonIdx      int     `json:"button_idx"`
	Players        []*Seat `json:"players"`
	YourIndex      int     `json:"your_index"`
	Street         string  `json:"street,omitempty"`
	CurrentBet     int     `json:"current_bet,omitempty"`
	MinRaise       int     `json:"min_raise,omitempty"`
	Flop           string  `json:"flop,omitempty"`
	Turn           string  `json:"turn,omitempty"`
	River          string  `json:"river,omitempty"`
	Pots           []int   `json:"pots,omitempty"`
	IndexToAct     *int    `json:"index_to_act,omitempty"`
	HoleCards      string  `json:"hole_cards,omitempty"`
	HandOver       bool    `json:"hand_over,omitempty"`
	GameSuspended  bool    `json:"game_suspended,omitempty"`
	AllInSituation bool    `json:"all_in_situation,omitempty"`

	// Settlements rides along on the final game_state of a hand
	// (hand_over is set). It is consumed once to build the showdown
	// entries and the hand history record.
	Settlements []Settlement `json:"settlements,omitempty"`
}

// Viewer returns the local player's seat, or nil when not seated.
func (g *Snapshot) Viewer() *Seat {
	if g.YourIndex < 0 || g.YourIndex >= len(g.Players) {
		return nil
	}
	return g.Players[g.YourIndex]
}

// Board returns the community cards revealed so far, in order.
func (g *Snapshot) Board() []CardCode {
	var cards []CardCode
	cards = append(cards, ParseCards(g.Flop)...)
	cards = append(cards, ParseCards(g.Turn)...)
	cards = append(cards, ParseCards(g.River)...)
	return cards
}

// BoardString is the run-together board representation ("2c9dQh" + turn + river).
func (g *Snapshot) BoardString() string {
	return g.Flop + g.Turn + g.River
}

// IsShowdown reports whether the hand reached showdown.
func (g *Snapshot) IsShowdown() bool {
	return g.Street == StreetShowdown
}

// SeatToAct returns the seat whose turn it is, or nil between hands.
func (g *Snapshot) SeatToAct() *Seat {
	if g.IndexToAct == nil {
		return nil
	}
	i := *g.IndexToAct
	if i < 0 || i >= len(g.Players) {
		return nil
	}
	return g.Players[i]
}

// LivePots filters out empty pots, keeping order (index 0 = main pot).
func (g *Snapshot) LivePots() []int {
	pots := make([]int, 0, len(g.Pots))
	for _, p := range g.Pots {
		if p > 0 {
			pots = append(pots, p)
		}
	}
	return pots
}

// PotTotal is the sum of all pots on the table.
func (g *Snapshot) PotTotal() int {
	total := 0
	for _, p := range g.Pots {
		total += p
	}
	return total
}
