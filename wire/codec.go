package wire

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type envelope struct {
	MsgType string `json:"msg_type"`
}

// Decode parses one server payload into its concrete message type.
// Unknown or missing msg_type values are errors; the caller logs and
// drops them without touching the connection.
func Decode(data []byte) (Inbound, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "unable to parse message envelope")
	}
	if env.MsgType == "" {
		return nil, errors.New("message is missing msg_type")
	}

	var msg Inbound
	switch env.MsgType {
	case MsgConnected:
		msg = &Connected{}
	case MsgPlayerName:
		msg = &PlayerName{}
	case MsgTablesList:
		msg = &TablesList{}
	case MsgTableInfo:
		msg = &TableInfo{}
	case MsgCreatedGame:
		msg = &CreatedGame{}
	case MsgGameState:
		msg = &GameState{}
	case MsgChat:
		msg = &Chat{}
	case MsgNewHand:
		msg = &NewHand{}
	case MsgYourTurn:
		msg = &YourTurn{}
	case MsgPlayerLeft:
		msg = &PlayerLeft{}
	case MsgHelpMessage:
		msg = &HelpMessage{}
	case MsgAdminSuccess:
		msg = &AdminSuccess{}
	case MsgError:
		msg = &ServerError{}
	default:
		return nil, errors.Errorf("unknown msg_type [%s]", env.MsgType)
	}

	if err := json.Unmarshal(data, msg); err != nil {
		return nil, errors.Wrapf(err, "unable to parse [%s] message", env.MsgType)
	}
	return msg, nil
}

// Encode serializes an outbound message.
func Encode(msg interface{}) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to serialize outbound message")
	}
	return data, nil
}

// EncodeAdminCommand builds and serializes an admin_command payload. The
// argument value rides under the command's own key, matching the server:
// {"msg_type": "admin_command", "admin_command": "big_blind", "big_blind": 24}
func EncodeAdminCommand(command string, arg interface{}) ([]byte, error) {
	payload := map[string]interface{}{
		"msg_type":      "admin_command",
		"admin_command": command,
	}
	if arg != nil {
		payload[command] = arg
	}
	return Encode(payload)
}
