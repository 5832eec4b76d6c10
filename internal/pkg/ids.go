package pkg

import "github.com/google/uuid"

// GenerateNewSessionID returns a unique player session identifier.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateGameID returns a short join code for a new game.
func GenerateGameID() string {
	return uuid.NewString()[:8]
}
