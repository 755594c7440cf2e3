package chat

import "time"

// Analytics tracks per-session counters. CrisisDetected is sticky: once
// a crisis turn is recorded it stays set for the life of the session.
type Analytics struct {
	TotalMessages     int  `json:"totalMessages"`
	CrisisDetected    bool `json:"crisisDetected"`
	ResourcesAccessed bool `json:"resourcesAccessed"`
}

// Session captures one transient anonymous conversation. Messages are
// insertion-ordered and bounded to the most recent turns; older turns
// are dropped, not archived.
type Session struct {
	ID           string    `json:"id"`
	Messages     []Message `json:"messages"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
	Analytics    Analytics `json:"analytics"`
}
