package casino

// Slot symbols. Seven is the top tier, diamond the second tier.
const (
	SymbolCherry  = "🍒"
	SymbolLemon   = "🍋"
	SymbolOrange  = "🍊"
	SymbolGrape   = "🍇"
	SymbolBell    = "🔔"
	SymbolDiamond = "💎"
	SymbolSeven   = "7️⃣"
)

// Default slot multipliers, total returned per unit bet
const (
	DefaultMinimumMultiplier = 1.0
	DefaultSmallMultiplier   = 2.0
	DefaultMediumMultiplier  = 3.0
	DefaultLargeMultiplier   = 5.0
	DefaultSuperMultiplier   = 10.0
	DefaultJackpotMultiplier = 25.0
)

// Default slot win-type labels
const (
	LabelMinimum = "Prêmio mínimo"
	LabelSmall   = "Par!"
	LabelMedium  = "Par de setes!"
	LabelLarge   = "Trinca!"
	LabelSuper   = "SUPER TRINCA!"
	LabelJackpot = "JACKPOT!"
	LabelLoss    = ""
)

// Blackjack payouts, total returned per unit bet
const (
	BlackjackWinMultiplier     = 2.0
	BlackjackNaturalMultiplier = 2.5
	BlackjackPushMultiplier    = 1.0

	BlackjackTarget     = 21
	DealerStandsAt      = 17
	aceSoftenAmount     = 10
	faceCardValue       = 10
	aceFullValue        = 11
	naturalHandSize     = 2
	deckSize            = 52
	rouletteSlots       = 37
	rouletteMaxNumber   = 36
	rouletteDozenSize   = 12
	rouletteColumnCount = 3
	dieFaces            = 6
)

// Roulette bet payouts, total returned per unit bet
const (
	RouletteStraightMultiplier  = 36.0
	RouletteEvenMoneyMultiplier = 2.0
	RouletteDozenMultiplier     = 3.0
)

// Dice guesses and their payouts
const (
	DiceGuessHigh  = "high"
	DiceGuessLow   = "low"
	DiceGuessSeven = "seven"

	DiceHighMin = 8
	DiceLowMax  = 6
	DiceSeven   = 7

	DiceEvenMoneyMultiplier = 2.0
	DiceSevenMultiplier     = 5.0
)

// Exchange defaults
const (
	DefaultChipValue   int64 = 10
	DefaultExchangeFee       = 0.10
)

// Stats cache defaults
const (
	DefaultStatsCacheSize = 1024
)

// Flavor categories
const (
	FlavorCategoryExchange = "exchange"
)

// Log messages
const (
	LogMsgBetPlaced          = "Bet placed"
	LogMsgBetRejected        = "Bet rejected: insufficient chips"
	LogMsgResultSettled      = "Bet settled"
	LogMsgExchangeCompleted  = "Chips exchanged"
	LogMsgExchangeRejected   = "Chip exchange rejected: insufficient chips"
	LogMsgCreditFailed       = "Currency credit failed, re-crediting chips"
	LogMsgCompensationFailed = "Compensating chip re-credit failed"
	LogMsgChipsBought        = "Chips bought"
	LogMsgChipGrantFailed    = "Chip grant failed, refunding currency"
	LogMsgRefundFailed       = "Currency refund failed"
)

// Result messages
const (
	MsgInsufficientChips = "Fichas insuficientes"
	MsgInsufficientFunds = "Saldo insuficiente"
)

// Error messages
const (
	ErrMsgBetAboveMax      = "bet exceeds maximum"
	ErrMsgInvalidPaytable  = "invalid paytable"
	ErrMsgInvalidRate      = "exchange fee must be in [0,1)"
	ErrMsgInvalidChipValue = "chip value must be positive"
)
