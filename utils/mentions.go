package utils

import (
	"regexp"
	"strings"
)

// Discord writes user mentions as <@id> or <@!id> depending on whether the
// user has a server nickname. Both point at the same account.
var mentionRe = regexp.MustCompile(`<@!?([0-9]+)>`)

// Mention renders a user id as a mention token.
func Mention(userID string) string {
	return "<@" + userID + ">"
}

// MentionIDs extracts every user id mentioned in s, in order of appearance.
// Repeats are kept; RenderReply dedups when it builds the ping prefix.
func MentionIDs(s string) []string {
	var ids []string
	for _, m := range mentionRe.FindAllStringSubmatch(s, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

// RenderReply builds the final message text: pings for the sender and anyone
// else the reply concerns, then the body. A multi-line body goes on its own
// lines so the first line isn't glued to the pings.
func RenderReply(senderID string, extraIDs []string, body string) string {
	ids := DedupPreserveOrder(append([]string{senderID}, extraIDs...))
	mentions := make([]string, len(ids))
	for i, id := range ids {
		mentions[i] = Mention(id)
	}
	separator := " "
	if strings.Contains(body, "\n") {
		separator = "\n"
	}
	return strings.Join(mentions, " ") + separator + body
}
