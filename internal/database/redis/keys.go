package redis

import "fmt"

// Hash fields
const (
	fieldChips       = "fichas_cassino"
	fieldQuantity    = "quantity"
	fieldLastUsed    = "lastUsed"
	fieldGamesPlayed = "gamesPlayed"
	fieldTotalBets   = "totalBets"
	fieldWinnings    = "winnings"
	fieldLosses      = "losses"
	fieldBalance     = "balance"
)

// inventoryKey holds the chip balance field
func inventoryKey(userID string) string {
	return fmt.Sprintf("users/{%s}/inventory", userID)
}

// itemIndexKey is the set of item ids the user has an entry for
func itemIndexKey(userID string) string {
	return fmt.Sprintf("users/{%s}/inventory/items", userID)
}

func itemKey(userID, itemID string) string {
	return fmt.Sprintf("users/{%s}/inventory/items/%s", userID, itemID)
}

func statsKey(userID string) string {
	return fmt.Sprintf("users/{%s}/stats/casino", userID)
}

func walletKey(userID string) string {
	return fmt.Sprintf("users/{%s}/economy", userID)
}
