package postgres

const (
	qGetChips = `SELECT chips FROM user_chips WHERE user_id = $1`

	qAddChips = `
INSERT INTO user_chips (user_id, chips) VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE
SET chips = user_chips.chips + EXCLUDED.chips, updated_at = NOW()
RETURNING chips`

	// guarded: zero rows when the balance does not cover the amount
	qDebitChips = `
UPDATE user_chips SET chips = chips - $2, updated_at = NOW()
WHERE user_id = $1 AND chips >= $2
RETURNING chips`

	qGetStats = `
SELECT games_played, total_bets, winnings, losses
FROM casino_stats WHERE user_id = $1`

	// a first bet seeds losses with the bet amount
	qRecordBet = `
INSERT INTO casino_stats (user_id, games_played, total_bets, winnings, losses)
VALUES ($1, 1, $2, 0, $2)
ON CONFLICT (user_id) DO UPDATE
SET games_played = casino_stats.games_played + 1,
    total_bets = casino_stats.total_bets + EXCLUDED.total_bets,
    updated_at = NOW()`

	qAddWinnings = `
INSERT INTO casino_stats (user_id, winnings) VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE
SET winnings = casino_stats.winnings + EXCLUDED.winnings, updated_at = NOW()`

	qAddLosses = `
INSERT INTO casino_stats (user_id, losses) VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE
SET losses = casino_stats.losses + EXCLUDED.losses, updated_at = NOW()`

	qGetItems = `SELECT item_id, quantity, last_used FROM user_items WHERE user_id = $1`

	qGetItem = `SELECT item_id, quantity, last_used FROM user_items WHERE user_id = $1 AND item_id = $2`

	qAddItem = `
INSERT INTO user_items (user_id, item_id, quantity) VALUES ($1, $2, $3)
ON CONFLICT (user_id, item_id) DO UPDATE
SET quantity = user_items.quantity + EXCLUDED.quantity, updated_at = NOW()
RETURNING quantity`

	qRemoveItem = `
UPDATE user_items SET quantity = quantity - $3, updated_at = NOW()
WHERE user_id = $1 AND item_id = $2 AND quantity >= $3
RETURNING quantity, last_used`

	qDeleteEmptyItem = `
DELETE FROM user_items
WHERE user_id = $1 AND item_id = $2 AND quantity = 0 AND last_used IS NULL`

	qUseItem = `
UPDATE user_items SET quantity = quantity - $4, last_used = $3, updated_at = NOW()
WHERE user_id = $1 AND item_id = $2 AND quantity >= 1
RETURNING quantity`

	qItemQuantity = `SELECT quantity FROM user_items WHERE user_id = $1 AND item_id = $2`

	qGetBalance = `SELECT balance FROM user_wallets WHERE user_id = $1`

	qCredit = `
INSERT INTO user_wallets (user_id, balance) VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE
SET balance = user_wallets.balance + EXCLUDED.balance, updated_at = NOW()
RETURNING balance`

	qDebit = `
UPDATE user_wallets SET balance = balance - $2, updated_at = NOW()
WHERE user_id = $1 AND balance >= $2
RETURNING balance`
)
