package wire

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajstarna/poker-client/game"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name     string
		payload  string
		expected Inbound
	}{
		{
			name:     "connected",
			payload:  `{"msg_type": "connected", "uuid": "8c1b0051-2ec0-4cb5-bd4d-4d7a4b0c0d0e"}`,
			expected: &Connected{UUID: "8c1b0051-2ec0-4cb5-bd4d-4d7a4b0c0d0e"},
		},
		{
			name:     "player_name",
			payload:  `{"msg_type": "player_name", "player_name": "alice"}`,
			expected: &PlayerName{PlayerName: "alice"},
		},
		{
			name:     "tables_list",
			payload:  `{"msg_type": "tables_list", "tables": ["alpha", "beta"]}`,
			expected: &TablesList{Tables: []string{"alpha", "beta"}},
		},
		{
			name:    "table_info",
			payload: `{"msg_type": "table_info", "table_name": "alpha", "small_blind": 5, "big_blind": 10, "buy_in": 1000, "max_players": 9, "num_humans": 2, "num_bots": 1}`,
			expected: &TableInfo{TableDetail: game.TableDetail{
				TableName:  "alpha",
				SmallBlind: 5,
				BigBlind:   10,
				BuyIn:      1000,
				MaxPlayers: 9,
				NumHumans:  2,
				NumBots:    1,
			}},
		},
		{
			name:     "created_game",
			payload:  `{"msg_type": "created_game", "table_name": "alpha"}`,
			expected: &CreatedGame{TableName: "alpha"},
		},
		{
			name:     "chat",
			payload:  `{"msg_type": "chat", "player_name": "bob", "text": "nh"}`,
			expected: &Chat{PlayerName: "bob", Text: "nh"},
		},
		{
			name:     "new_hand",
			payload:  `{"msg_type": "new_hand", "hand_num": 12}`,
			expected: &NewHand{HandNum: 12},
		},
		{
			name:     "your_turn",
			payload:  `{"msg_type": "your_turn", "current_bet": 40}`,
			expected: &YourTurn{CurrentBet: 40},
		},
		{
			name:     "player_left",
			payload:  `{"msg_type": "player_left"}`,
			expected: &PlayerLeft{},
		},
		{
			name:     "help_message",
			payload:  `{"msg_type": "help_message", "commands": ["small_blind", "big_blind"]}`,
			expected: &HelpMessage{Commands: []string{"small_blind", "big_blind"}},
		},
		{
			name:     "admin_success",
			payload:  `{"msg_type": "admin_success", "text": "blinds updated"}`,
			expected: &AdminSuccess{Text: "blinds updated"},
		},
		{
			name:     "error",
			payload:  `{"msg_type": "error", "error": "unable_to_create", "reason": "name taken"}`,
			expected: &ServerError{Error: "unable_to_create", Reason: "name taken"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Decode([]byte(tc.payload))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if diff := cmp.Diff(tc.expected, result); diff != "" {
				t.Errorf("Decode mismatch (-expected +actual):\n%s", diff)
			}
		})
	}
}

func TestDecodeGameState(t *testing.T) {
	payload := `{
		"msg_type": "game_state",
		"name": "alpha",
		"max_players": 9,
		"small_blind": 5,
		"big_blind": 10,
		"hand_num": 3,
		"button_idx": 2,
		"your_index": 0,
		"street": "flop",
		"current_bet": 20,
		"flop": "2c9dQh",
		"pots": [60],
		"index_to_act": 0,
		"hole_cards": "AhKh",
		"players": [
			{"index": 0, "player_name": "me", "money": 480, "is_active": true, "preflop_cont": 10, "flop_cont": 0},
			null,
			{"index": 2, "player_name": "bob", "money": 990, "is_active": true, "last_action": "fold", "preflop_cont": 10}
		]
	}`

	result, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	gs, ok := result.(*GameState)
	if !ok {
		t.Fatalf("Expected *GameState, got %T", result)
	}
	if gs.Name != "alpha" || gs.Street != game.StreetFlop || gs.Flop != "2c9dQh" {
		t.Errorf("Snapshot fields mismatch: %+v", gs.Snapshot)
	}
	if gs.IndexToAct == nil || *gs.IndexToAct != 0 {
		t.Errorf("index_to_act should decode to 0, got %v", gs.IndexToAct)
	}
	if len(gs.Players) != 3 || gs.Players[1] != nil {
		t.Errorf("Empty seats should decode to nil: %v", gs.Players)
	}
	if !gs.Players[2].Folded() {
		t.Errorf("Seat 2 should be folded: %+v", gs.Players[2])
	}
}

func TestDecodeSettledGameState(t *testing.T) {
	payload := `{
		"msg_type": "game_state",
		"name": "alpha",
		"max_players": 9,
		"your_index": 0,
		"hand_over": true,
		"players": [{"index": 0, "player_name": "me", "money": 560, "is_active": true}],
		"settlements": [
			{"index": 0, "player_name": "me", "pot_index": 0, "is_showdown": true, "winner": true,
			 "payout": 80, "hole_cards": "AhKh", "hand_result": "TwoPair",
			 "constituent_cards": "Ah-Ad-Kh-Kd", "kickers": "Qs"}
		]
	}`

	result, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	gs := result.(*GameState)
	if !gs.HandOver || len(gs.Settlements) != 1 {
		t.Fatalf("Expected settled snapshot, got %+v", gs.Snapshot)
	}
	row := gs.Settlements[0]
	if row.HandResult != "TwoPair" || row.ConstituentCards != "Ah-Ad-Kh-Kd" || row.Kickers != "Qs" {
		t.Errorf("Settlement row mismatch: %+v", row)
	}
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "not json"},
		{name: "missing msg_type", payload: `{"uuid": "x"}`},
		{name: "unknown msg_type", payload: `{"msg_type": "bogus"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode([]byte(tc.payload)); err == nil {
				t.Errorf("Expected error for payload %q", tc.payload)
			}
		})
	}
}

func TestEncodeAdminCommand(t *testing.T) {
	data, err := EncodeAdminCommand("big_blind", 24)
	if err != nil {
		t.Fatalf("EncodeAdminCommand failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Round trip failed: %v", err)
	}
	expected := map[string]interface{}{
		"msg_type":      "admin_command",
		"admin_command": "big_blind",
		"big_blind":     float64(24),
	}
	if diff := cmp.Diff(expected, decoded); diff != "" {
		t.Errorf("Admin command mismatch (-expected +actual):\n%s", diff)
	}
}

func TestEncodePlayerAction(t *testing.T) {
	data, err := Encode(PlayerAction{MsgType: OutPlayerAction, Action: "bet", Amount: 40})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Round trip failed: %v", err)
	}
	if decoded["msg_type"] != "player_action" || decoded["action"] != "bet" || decoded["amount"] != float64(40) {
		t.Errorf("Unexpected payload: %v", decoded)
	}

	// amount is omitted for actions that do not carry one.
	data, err = Encode(PlayerAction{MsgType: OutPlayerAction, Action: "fold"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded = nil
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Round trip failed: %v", err)
	}
	if _, ok := decoded["amount"]; ok {
		t.Errorf("amount should be omitted for fold: %v", decoded)
	}
}
