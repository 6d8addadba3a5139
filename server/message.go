package server

import (
	"encoding/json"
	"fmt"

	"github.com/pthm-cable/cruise/economy"
)

// Message types carried in the envelope.
const (
	TypeStatus  = "status"
	TypeCommand = "command"
	TypeError   = "error"
)

// Message is the JSON envelope for every frame on the socket.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Command asks the game loop to run a priced action. X and Y are optional
// and only used by buy; without them the ship spawns at a random point.
type Command struct {
	Action economy.Action `json:"action"`
	X      *float32       `json:"x,omitempty"`
	Y      *float32       `json:"y,omitempty"`
}

// HasPosition reports whether the command carries a spawn point.
func (c Command) HasPosition() bool {
	return c.X != nil && c.Y != nil
}

// ErrorPayload is sent back to a client whose message was rejected.
type ErrorPayload struct {
	Message string `json:"message"`
}

// Encode wraps a payload in an envelope.
func Encode(typ string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", typ, err)
	}
	return json.Marshal(Message{Type: typ, Payload: raw})
}

// DecodeCommand parses a client frame into a validated command.
func DecodeCommand(data []byte) (Command, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Command{}, fmt.Errorf("decoding message: %w", err)
	}
	if msg.Type != TypeCommand {
		return Command{}, fmt.Errorf("unexpected message type %q", msg.Type)
	}
	var cmd Command
	if err := json.Unmarshal(msg.Payload, &cmd); err != nil {
		return Command{}, fmt.Errorf("decoding command: %w", err)
	}
	if _, err := economy.ParseAction(string(cmd.Action)); err != nil {
		return Command{}, err
	}
	return cmd, nil
}
