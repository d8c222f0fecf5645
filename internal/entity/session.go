package entity

// Session - one connected client. The session plays both marks itself,
// so there is no separate player identity or mark assignment.
type Session struct {
	ID     string `json:"id"`
	GameID string `json:"game_id,omitempty"`
}
