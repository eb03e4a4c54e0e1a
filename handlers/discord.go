package handlers

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/mapleleafu/gamenight-bot/utils"
)

// AttachDiscord wires the dispatcher into a Discord session. The caller
// still opens and closes the session.
func AttachDiscord(s *discordgo.Session, reg *Registry, env *Env) {
	s.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent

	s.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}

		text, handled := reg.Dispatch(context.Background(), env, m.Author.ID, m.Content)
		if !handled {
			// Ordinary chat: stay quiet unless someone is talking at us.
			if !mentionsUser(m, botUserID(s)) {
				return
			}
			text = utils.RenderReply(m.Author.ID, nil, nudge)
		}

		if _, err := s.ChannelMessageSend(m.ChannelID, text); err != nil {
			log.Printf("send reply to channel %s: %v", m.ChannelID, err)
		}
	})
}

func botUserID(s *discordgo.Session) string {
	if s.State != nil && s.State.User != nil {
		return s.State.User.ID
	}
	return ""
}

func mentionsUser(m *discordgo.MessageCreate, userID string) bool {
	if userID == "" {
		return false
	}
	for _, u := range m.Mentions {
		if u != nil && u.ID == userID {
			return true
		}
	}
	return false
}
