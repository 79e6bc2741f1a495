package config

import "time"

const (
	// Remote API request timeout
	RequestTimeout = 30 * time.Second

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Placeholder images for products without one
	PlaceholderCardImage   = "https://via.placeholder.com/300"
	PlaceholderDetailImage = "https://via.placeholder.com/400"

	// History timestamps arrive from the API without a zone, in UTC
	HistoryTimestampLayout = "2006-01-02 15:04:05"
)
