package wire

// Outbound message shapes. Every outbound message is a flat JSON object
// with the same msg_type discriminant the server uses for dispatch.

// Outbound msg_type discriminants.
const (
	OutPlayerAction string = "player_action"
	OutList         string = "list"
	OutJoin         string = "join"
	OutCreate       string = "create"
	OutAdminCommand string = "admin_command"
	OutLeave        string = "leave"
	OutSitOut       string = "sitout"
	OutImBack       string = "imback"
	OutName         string = "name"
	OutChat         string = "chat"
	OutHelp         string = "help"
)

// PlayerAction is the viewer's betting decision.
// {"msg_type": "player_action", "action": "bet", "amount": 40}
type PlayerAction struct {
	MsgType string `json:"msg_type"`
	Action  string `json:"action"`
	Amount  int    `json:"amount,omitempty"`
}

// Leave leaves the current table.
type Leave struct {
	MsgType string `json:"msg_type"`
}

// SitOut marks the viewer as sitting out; ImBack reverses it.
type SitOut struct {
	MsgType string `json:"msg_type"`
}

type ImBack struct {
	MsgType string `json:"msg_type"`
}

// SetName registers the display name with the server.
type SetName struct {
	MsgType    string `json:"msg_type"`
	PlayerName string `json:"player_name"`
}

// ChatSend sends one chat line to the current table.
type ChatSend struct {
	MsgType string `json:"msg_type"`
	Text    string `json:"text"`
}

// JoinTable asks to sit at a named table.
type JoinTable struct {
	MsgType   string `json:"msg_type"`
	TableName string `json:"table_name"`
	Password  string `json:"password"`
}

// CreateTable asks the server to create a table from the given settings.
// The settings map is passed through untouched; the server validates it.
type CreateTable struct {
	MsgType  string                 `json:"msg_type"`
	Settings map[string]interface{} `json:"settings,omitempty"`
}

// ListTables requests a fresh tables_list.
type ListTables struct {
	MsgType string `json:"msg_type"`
}

// Help requests the admin command listing.
type Help struct {
	MsgType string `json:"msg_type"`
}
