package state

import (
	"sync"

	"github.com/ajstarna/poker-client/game"
)

// View is the screen the surrounding application should be showing.
type View string

const (
	ViewMenu  View = "menu"
	ViewLobby View = "lobby"
	ViewTable View = "table"
)

// Cue is a one-shot prompt for the surrounding application (sound,
// notification). Cues queue up until drained.
type Cue string

const (
	CueDeal Cue = "deal"
	CueTurn Cue = "turn"
)

// ChatLine is one transcript line.
type ChatLine struct {
	PlayerName string
	Text       string
}

// Notice is a dismissible server-reported error.
type Notice struct {
	Code   string
	Reason string
}

// App is the single state container shared by the connection manager and
// the render loop. All writes happen on the dispatch goroutine; the render
// loop reads once per frame. The snapshot is replaced wholesale, never
// mutated in place, so a frame always observes a consistent table.
type App struct {
	mu sync.RWMutex

	snapshot *game.Snapshot
	showdown []game.ShowdownEntry

	tables     game.TableSummaries
	playerName string

	chat        []ChatLine
	chatLimit   int
	history     []game.HandRecord
	notices     []Notice
	cues        []Cue
	view        View
	creating    bool
	helpCmds    []string
	turnBet     int
}

func NewApp(chatLimit int) *App {
	if chatLimit <= 0 {
		chatLimit = 200
	}
	return &App{
		tables:    make(game.TableSummaries),
		chatLimit: chatLimit,
		view:      ViewMenu,
	}
}

// ReplaceSnapshot publishes a new authoritative snapshot. Entries derived
// from the previous hand's settlement stay in place until the next
// settlement or new-hand cue clears them.
func (a *App) ReplaceSnapshot(snap *game.Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.snapshot = snap
}

// Snapshot returns the current snapshot pointer. Callers must treat it as
// immutable; the dispatch side never mutates a published snapshot.
func (a *App) Snapshot() *game.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

// SetShowdown installs the merged entries for the settling hand and
// records the viewer's history entry.
func (a *App) SetShowdown(entries []game.ShowdownEntry, record game.HandRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.showdown = entries
	a.history = append(a.history, record)
}

// ClearShowdown drops the previous hand's reveal state (a new hand began).
func (a *App) ClearShowdown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.showdown = nil
}

// Showdown returns the current hand's merged entries, nil outside a
// settled hand.
func (a *App) Showdown() []game.ShowdownEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.showdown
}

// History returns a copy of the hand-history records for this session.
func (a *App) History() []game.HandRecord {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]game.HandRecord, len(a.history))
	copy(out, a.history)
	return out
}

// Leaderboard derives the stack-ordered seat list from the current
// snapshot, for the surrounding application's stats panel.
func (a *App) Leaderboard() []game.StackRank {
	return game.Leaderboard(a.Snapshot())
}

func (a *App) ApplyTablesList(names []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tables.ApplyList(names)
}

func (a *App) ApplyTableDetail(detail game.TableDetail) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tables.ApplyDetail(detail)
}

// Tables returns the lobby rows that have received their details.
func (a *App) Tables() []game.TableSummary {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.tables.Known()
}

// TableCount reports how many summaries the client currently tracks,
// detailed or not.
func (a *App) TableCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.tables)
}

// HasTable reports whether a name is currently tracked.
func (a *App) HasTable(name string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.tables[name]
	return ok
}

func (a *App) SetPlayerName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.playerName = name
}

func (a *App) PlayerName() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.playerName
}

// AppendChat adds one transcript line, trimming the oldest lines past the
// configured limit.
func (a *App) AppendChat(line ChatLine) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.chat = append(a.chat, line)
	if len(a.chat) > a.chatLimit {
		a.chat = a.chat[len(a.chat)-a.chatLimit:]
	}
}

func (a *App) Chat() []ChatLine {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]ChatLine, len(a.chat))
	copy(out, a.chat)
	return out
}

// PushNotice surfaces a dismissible server error.
func (a *App) PushNotice(n Notice) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notices = append(a.notices, n)
}

// DismissNotice removes the oldest notice.
func (a *App) DismissNotice() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.notices) > 0 {
		a.notices = a.notices[1:]
	}
}

func (a *App) Notices() []Notice {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Notice, len(a.notices))
	copy(out, a.notices)
	return out
}

// PushCue queues a one-shot cue; DrainCues hands all pending cues to the
// caller and clears the queue.
func (a *App) PushCue(c Cue) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cues = append(a.cues, c)
}

func (a *App) DrainCues() []Cue {
	a.mu.Lock()
	defer a.mu.Unlock()
	cues := a.cues
	a.cues = nil
	return cues
}

func (a *App) SetView(v View) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = v
}

func (a *App) View() View {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.view
}

// SetCreatingTable flags the "creating table" wait state; the
// unable_to_create error and the created_game ack both clear it.
func (a *App) SetCreatingTable(creating bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.creating = creating
}

func (a *App) CreatingTable() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.creating
}

func (a *App) SetHelpCommands(cmds []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.helpCmds = cmds
}

func (a *App) HelpCommands() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.helpCmds))
	copy(out, a.helpCmds)
	return out
}

// SetTurnBet records the current bet from the latest act prompt so the
// action bar can phrase check vs call.
func (a *App) SetTurnBet(amount int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.turnBet = amount
}

func (a *App) TurnBet() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.turnBet
}
