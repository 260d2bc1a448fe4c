package domain

import "errors"

// ErrUserExists is returned by the store when a username is already taken.
var ErrUserExists = errors.New("user already exists")

// User is the persisted account record. The JSON tags define the on-disk
// layout of the users file: a flat array of these records.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Score    int    `json:"score"`
}

// ScoreEntry is the public leaderboard projection of a User.
type ScoreEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}
