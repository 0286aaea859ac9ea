package entity

import "time"

type Stat string

const (
	StatWins   Stat = "wins"
	StatLosses Stat = "losses"
	StatDraws  Stat = "draws"
)

func (that Stat) Valid() bool {
	switch that {
	case StatWins, StatLosses, StatDraws:
		return true
	default:
		return false
	}
}

// User - a registered account. GameID references the last game the user was put into.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	Draws        int       `json:"draws"`
	GameID       string    `json:"game,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type LeaderboardEntry struct {
	Username string `json:"username"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}
