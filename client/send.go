package client

import (
	"github.com/pkg/errors"

	"github.com/ajstarna/poker-client/wire"
)

// Outbound requests. Each method marshals one message and writes it on
// the open socket; when the socket is down the error comes straight back
// to the caller and nothing is queued.

func (m *Manager) sendMsg(msg interface{}) error {
	data, err := wire.Encode(msg)
	if err != nil {
		return err
	}
	return m.send(data)
}

// SendAction submits the viewer's betting decision. Amount is only
// meaningful for bet; the server sizes calls itself.
func (m *Manager) SendAction(action string, amount int) error {
	return m.sendMsg(wire.PlayerAction{
		MsgType: wire.OutPlayerAction,
		Action:  action,
		Amount:  amount,
	})
}

func (m *Manager) SendListTables() error {
	return m.sendMsg(wire.ListTables{MsgType: wire.OutList})
}

func (m *Manager) SendJoin(tableName, password string) error {
	if tableName == "" {
		return errors.New("table name is required")
	}
	return m.sendMsg(wire.JoinTable{
		MsgType:   wire.OutJoin,
		TableName: tableName,
		Password:  password,
	})
}

// SendCreateTable submits the table settings and flags the wait state.
// The created_game ack or the unable_to_create error clears it.
func (m *Manager) SendCreateTable(settings map[string]interface{}) error {
	err := m.sendMsg(wire.CreateTable{
		MsgType:  wire.OutCreate,
		Settings: settings,
	})
	if err != nil {
		return err
	}
	m.app.SetCreatingTable(true)
	return nil
}

// SendAdminCommand sends one admin command with its argument riding under
// the command's own key.
func (m *Manager) SendAdminCommand(command string, arg interface{}) error {
	if command == "" {
		return errors.New("admin command is required")
	}
	data, err := wire.EncodeAdminCommand(command, arg)
	if err != nil {
		return err
	}
	return m.send(data)
}

func (m *Manager) SendLeave() error {
	return m.sendMsg(wire.Leave{MsgType: wire.OutLeave})
}

func (m *Manager) SendSitOut() error {
	return m.sendMsg(wire.SitOut{MsgType: wire.OutSitOut})
}

func (m *Manager) SendImBack() error {
	return m.sendMsg(wire.ImBack{MsgType: wire.OutImBack})
}

// SendSetName registers the display name and saves it with the session so
// the next run replays it.
func (m *Manager) SendSetName(name string) error {
	if name == "" {
		return errors.New("player name is required")
	}
	err := m.sendMsg(wire.SetName{MsgType: wire.OutName, PlayerName: name})
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.session.PlayerName = name
	session := *m.session
	m.mu.Unlock()
	if err := m.store.Save(&session); err != nil {
		connLogger.Error().Err(err).Msg("Unable to save session")
	}
	return nil
}

func (m *Manager) SendChat(text string) error {
	if text == "" {
		return errors.New("chat text is required")
	}
	return m.sendMsg(wire.ChatSend{MsgType: wire.OutChat, Text: text})
}

func (m *Manager) SendHelp() error {
	return m.sendMsg(wire.Help{MsgType: wire.OutHelp})
}
