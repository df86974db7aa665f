package pkg

import (
	"encoding/hex"

	"lukechampine.com/frand"
)

const gameIDBytes = 8

// GenerateGameID returns a random 16 character hex id.
func GenerateGameID() string {
	return hex.EncodeToString(frand.Bytes(gameIDBytes))
}
