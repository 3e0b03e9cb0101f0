package entity

import "time"

// Message foydalanuvchi xabari va bot javobi
type Message struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatContext foydalanuvchining suhbat konteksti
type ChatContext struct {
	UserID   int64     `json:"user_id"`
	Messages []Message `json:"messages"`
	LastUsed time.Time `json:"last_used"`
}
