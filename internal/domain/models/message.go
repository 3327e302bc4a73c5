package models

import (
	"net/url"
	"time"
)

// Form field names understood by the message board
const (
	FormFieldUsername = "username"
	FormFieldMessage  = "message"
)

// Message is a single entry on the message board
type Message struct {
	ID       string            `bson:"_id" json:"id"`
	Username string            `bson:"username" json:"username"`
	Body     string            `bson:"message" json:"message"`
	Date     time.Time         `bson:"date" json:"date"`
	Extra    map[string]string `bson:",inline" json:"extra,omitempty"`
}

// MessageFromForm maps decoded form values onto a Message. When a key
// repeats, the last value wins. The username and message fields map to the
// named struct fields; any other pair the client sent is kept in Extra so
// nothing submitted is silently dropped.
func MessageFromForm(values url.Values) Message {
	msg := Message{
		Username: lastValue(values[FormFieldUsername]),
		Body:     lastValue(values[FormFieldMessage]),
	}

	for key, vals := range values {
		if key == "" || key == FormFieldUsername || key == FormFieldMessage {
			continue
		}
		if msg.Extra == nil {
			msg.Extra = make(map[string]string)
		}
		msg.Extra[key] = lastValue(vals)
	}

	return msg
}

func lastValue(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[len(vals)-1]
}

// IsEmpty reports whether the form carried nothing at all
func (m Message) IsEmpty() bool {
	return m.Username == "" && m.Body == "" && len(m.Extra) == 0
}
