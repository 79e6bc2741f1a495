package domain

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one conversational turn. Created locally on send or fetched
// from history on load; immutable once displayed.
type ChatMessage struct {
	Content   string
	Sender    Sender
	Timestamp string
}
