package api

// SingleChatRequest sends a one-to-one message
type SingleChatRequest struct {
	ReceiverID int64  `json:"receiverId"`
	Content    string `json:"content"`
}

// ChatMessage is the stored form of a delivered message
type ChatMessage struct {
	ID         int64  `json:"id"`
	SenderID   int64  `json:"senderId"`
	ReceiverID int64  `json:"receiverId"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
	Status     string `json:"status"`
}

type SingleChatResponse = Response[ChatMessage]
