package expense

import (
	"context"
	"fmt"

	tele "gopkg.in/telebot.v4"
)

// Participant is one selectable payer/payee. ID is the stable identifier
// embedded in payloads, DisplayName is the button label.
type Participant struct {
	ID          string
	DisplayName string
}

// RosterProvider lists the participants eligible for selection in a chat.
// The roster is fetched fresh on every render; the Telegram API handle
// arrives with the update being handled rather than being captured at
// construction.
type RosterProvider interface {
	Participants(ctx context.Context, api tele.API, chat *tele.Chat) ([]Participant, error)
}

// AdminRoster lists chat administrators. Bots cannot enumerate full group
// membership through the Bot API, so administrators stand in for the group
// roster. Participants are keyed by username, falling back to first name for
// accounts without one.
type AdminRoster struct{}

func (AdminRoster) Participants(_ context.Context, api tele.API, chat *tele.Chat) ([]Participant, error) {
	members, err := api.AdminsOf(chat)
	if err != nil {
		return nil, fmt.Errorf("list chat admins: %w", err)
	}
	roster := make([]Participant, 0, len(members))
	for _, m := range members {
		if m.User == nil || m.User.IsBot {
			continue
		}
		id := m.User.Username
		if id == "" {
			id = m.User.FirstName
		}
		if id == "" {
			continue
		}
		roster = append(roster, Participant{ID: id, DisplayName: id})
	}
	return roster, nil
}
