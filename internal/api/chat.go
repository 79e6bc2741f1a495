package api

import (
	"context"
	"net/http"

	"github.com/shopmate/shopmate/internal/domain"
)

// ChatReply is the assistant's answer to one message, optionally carrying
// products it wants shown alongside the text.
type ChatReply struct {
	Response string
	Products []domain.Product
}

type chatResponse struct {
	envelope
	Response string           `json:"response"`
	Products []domain.Product `json:"products"`
}

func (c *Client) SendMessage(ctx context.Context, text string) (*ChatReply, error) {
	var resp chatResponse
	err := c.do(ctx, http.MethodPost, "/api/chat", map[string]string{"message": text}, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.check("Sorry, I encountered an error. Please try again."); err != nil {
		return nil, err
	}
	return &ChatReply{Response: resp.Response, Products: resp.Products}, nil
}

// historyEntry is one persisted turn as the server stores it. Timestamp is a
// zoneless UTC string.
type historyEntry struct {
	Content   string `json:"content"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

type historyResponse struct {
	envelope
	History []historyEntry `json:"history"`
}

// History returns the persisted conversation in its original order.
func (c *Client) History(ctx context.Context) ([]domain.ChatMessage, error) {
	var resp historyResponse
	if err := c.do(ctx, http.MethodGet, "/api/chat/history", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.check("Failed to load chat history."); err != nil {
		return nil, err
	}
	msgs := make([]domain.ChatMessage, 0, len(resp.History))
	for _, e := range resp.History {
		msgs = append(msgs, domain.ChatMessage{
			Content:   e.Content,
			Sender:    domain.Sender(e.Type),
			Timestamp: e.Timestamp,
		})
	}
	return msgs, nil
}

func (c *Client) ResetChat(ctx context.Context) error {
	var resp envelope
	if err := c.do(ctx, http.MethodPost, "/api/chat/reset", nil, &resp); err != nil {
		return err
	}
	return resp.check("Failed to reset chat session.")
}
