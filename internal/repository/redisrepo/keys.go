package redisrepo

import "fmt"

// Key prefix for all auction data
const keyPrefix = "auction"

func adminKey(username string) string {
	return fmt.Sprintf("%s:admin:%s", keyPrefix, username)
}

func buyerKey(username string) string {
	return fmt.Sprintf("%s:buyer:%s", keyPrefix, username)
}

func playerKey(id string) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey is the SET of every player ID
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// bidsKey is a LIST of JSON bids for a player, newest at the head
func bidsKey(playerID string) string {
	return fmt.Sprintf("%s:bids:%s", keyPrefix, playerID)
}
