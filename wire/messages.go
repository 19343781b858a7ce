package wire

import (
	"github.com/ajstarna/poker-client/game"
)

// Message type discriminants used by the server.
const (
	MsgConnected    string = "connected"
	MsgPlayerName   string = "player_name"
	MsgTablesList   string = "tables_list"
	MsgTableInfo    string = "table_info"
	MsgCreatedGame  string = "created_game"
	MsgGameState    string = "game_state"
	MsgChat         string = "chat"
	MsgNewHand      string = "new_hand"
	MsgYourTurn     string = "your_turn"
	MsgPlayerLeft   string = "player_left"
	MsgHelpMessage  string = "help_message"
	MsgAdminSuccess string = "admin_success"
	MsgError        string = "error"
)

// Error codes the client reacts to beyond surfacing the reason.
const (
	ErrUnableToCreate string = "unable_to_create"
)

// Inbound is a server message. Decode returns exactly one of the concrete
// types below, so dispatch is an exhaustive type switch: adding a message
// type means adding a case the compiler can point at.
type Inbound interface {
	MsgType() string
}

// Connected carries the server-issued session id.
type Connected struct {
	UUID string `json:"uuid"`
}

func (Connected) MsgType() string { return MsgConnected }

// PlayerName echoes the display name the server has on file.
type PlayerName struct {
	PlayerName string `json:"player_name"`
}

func (PlayerName) MsgType() string { return MsgPlayerName }

// TablesList is the refreshed list of public table names.
type TablesList struct {
	Tables []string `json:"tables"`
}

func (TablesList) MsgType() string { return MsgTablesList }

// TableInfo is the detail message for one table.
type TableInfo struct {
	game.TableDetail
}

func (TableInfo) MsgType() string { return MsgTableInfo }

// CreatedGame acknowledges a create request.
type CreatedGame struct {
	TableName string `json:"table_name"`
}

func (CreatedGame) MsgType() string { return MsgCreatedGame }

// GameState is the wholesale snapshot replacement.
type GameState struct {
	game.Snapshot
}

func (GameState) MsgType() string { return MsgGameState }

// Chat is one chat line.
type Chat struct {
	PlayerName string `json:"player_name"`
	Text       string `json:"text"`
}

func (Chat) MsgType() string { return MsgChat }

// NewHand announces that a fresh hand is being dealt.
type NewHand struct {
	HandNum int `json:"hand_num"`
}

func (NewHand) MsgType() string { return MsgNewHand }

// YourTurn prompts the viewer to act. CurrentBet is included so the prompt
// can phrase check vs call.
type YourTurn struct {
	CurrentBet int `json:"current_bet"`
}

func (YourTurn) MsgType() string { return MsgYourTurn }

// PlayerLeft tells the client its player left the table.
type PlayerLeft struct{}

func (PlayerLeft) MsgType() string { return MsgPlayerLeft }

// HelpMessage lists available admin commands.
type HelpMessage struct {
	Commands []string `json:"commands"`
}

func (HelpMessage) MsgType() string { return MsgHelpMessage }

// AdminSuccess acknowledges an admin command.
type AdminSuccess struct {
	Text string `json:"text"`
}

func (AdminSuccess) MsgType() string { return MsgAdminSuccess }

// ServerError is a server-reported domain error.
type ServerError struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func (ServerError) MsgType() string { return MsgError }
