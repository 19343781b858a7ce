package client

import (
	"github.com/rs/zerolog/log"

	"github.com/ajstarna/poker-client/game"
	"github.com/ajstarna/poker-client/logging"
	"github.com/ajstarna/poker-client/state"
	"github.com/ajstarna/poker-client/wire"
)

var dispatchLogger = log.With().Str("logger_name", "client::dispatch").Logger()

// handleMessage decodes one server payload and applies it to the shared
// state. Malformed payloads are logged and dropped; the connection stays
// up.
func (m *Manager) handleMessage(data []byte) {
	msg, err := wire.Decode(data)
	if err != nil {
		dispatchLogger.Warn().Err(err).Msg("Dropping unparseable server message")
		return
	}

	switch msg := msg.(type) {
	case *wire.Connected:
		m.onConnected(msg)
	case *wire.PlayerName:
		m.onPlayerName(msg)
	case *wire.TablesList:
		m.app.ApplyTablesList(msg.Tables)
	case *wire.TableInfo:
		m.app.ApplyTableDetail(msg.TableDetail)
	case *wire.CreatedGame:
		dispatchLogger.Info().
			Str(logging.TableNameKey, msg.TableName).
			Msg("Table created")
		m.app.SetCreatingTable(false)
	case *wire.GameState:
		m.onGameState(&msg.Snapshot)
	case *wire.Chat:
		m.app.AppendChat(state.ChatLine{PlayerName: msg.PlayerName, Text: msg.Text})
	case *wire.NewHand:
		dispatchLogger.Debug().
			Int(logging.HandNumKey, msg.HandNum).
			Msg("New hand")
		m.app.ClearShowdown()
		m.app.PushCue(state.CueDeal)
	case *wire.YourTurn:
		m.app.SetTurnBet(msg.CurrentBet)
		m.app.PushCue(state.CueTurn)
	case *wire.PlayerLeft:
		m.app.ReplaceSnapshot(nil)
		m.app.ClearShowdown()
		m.app.SetView(state.ViewLobby)
	case *wire.HelpMessage:
		m.app.SetHelpCommands(msg.Commands)
	case *wire.AdminSuccess:
		m.app.AppendChat(state.ChatLine{PlayerName: "server", Text: msg.Text})
	case *wire.ServerError:
		m.onServerError(msg)
	default:
		dispatchLogger.Warn().
			Str(logging.MsgTypeKey, msg.MsgType()).
			Msg("No handler for message type")
	}
}

// onConnected persists the session id the server issued and replays the
// saved display name so a returning player keeps their identity.
func (m *Manager) onConnected(msg *wire.Connected) {
	m.mu.Lock()
	m.session.UUID = msg.UUID
	session := *m.session
	m.mu.Unlock()

	if err := m.store.Save(&session); err != nil {
		dispatchLogger.Error().Err(err).Msg("Unable to save session")
	}
	m.app.SetView(state.ViewLobby)

	if session.PlayerName != "" {
		if err := m.SendSetName(session.PlayerName); err != nil {
			dispatchLogger.Error().Err(err).Msg("Unable to replay saved player name")
		}
	}
	if err := m.SendListTables(); err != nil {
		dispatchLogger.Error().Err(err).Msg("Unable to request tables list")
	}
}

func (m *Manager) onPlayerName(msg *wire.PlayerName) {
	dispatchLogger.Debug().
		Str(logging.PlayerNameKey, msg.PlayerName).
		Msg("Player name confirmed")
	m.app.SetPlayerName(msg.PlayerName)

	m.mu.Lock()
	m.session.PlayerName = msg.PlayerName
	session := *m.session
	m.mu.Unlock()

	if err := m.store.Save(&session); err != nil {
		dispatchLogger.Error().Err(err).Msg("Unable to save session")
	}
}

// onGameState installs the snapshot and, when the hand has settled,
// derives the showdown entries and the viewer's history record from the
// embedded settlement rows.
func (m *Manager) onGameState(snap *game.Snapshot) {
	m.app.ReplaceSnapshot(snap)
	m.app.SetView(state.ViewTable)

	if snap.HandOver && len(snap.Settlements) > 0 {
		entries := game.BuildShowdown(snap.Settlements)
		record := game.BuildHandRecord(snap, entries)
		m.app.SetShowdown(entries, record)
	}
}

func (m *Manager) onServerError(msg *wire.ServerError) {
	dispatchLogger.Warn().
		Str("error", msg.Error).
		Str("reason", msg.Reason).
		Msg("Server reported an error")
	if msg.Error == wire.ErrUnableToCreate {
		m.app.SetCreatingTable(false)
	}
	m.app.PushNotice(state.Notice{Code: msg.Error, Reason: msg.Reason})
}
