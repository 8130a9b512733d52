package domain

import "time"

// ItemCategory groups catalog entries for store listings
type ItemCategory string

const (
	CategoryConsumable  ItemCategory = "consumable"
	CategoryBoost       ItemCategory = "boost"
	CategoryTool        ItemCategory = "tool"
	CategoryCollectible ItemCategory = "collectible"
)

// ValidCategories is the closed set of categories accepted by the catalog
var ValidCategories = []ItemCategory{
	CategoryConsumable,
	CategoryBoost,
	CategoryTool,
	CategoryCollectible,
}

// IsValid reports whether c is a known category
func (c ItemCategory) IsValid() bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ItemEffect names what happens when an item is used
type ItemEffect string

const (
	EffectNone          ItemEffect = ""
	EffectCasinoLuck    ItemEffect = "casino_luck"
	EffectWorkBonus     ItemEffect = "work_bonus"
	EffectRobProtection ItemEffect = "rob_protection"
	EffectDailyBonus    ItemEffect = "daily_bonus"
	EffectXPBoost       ItemEffect = "xp_boost"
)

// Item is a static catalog definition. Cooldown and Duration are stored in
// milliseconds so they line up with the lastUsed timestamps in the ledger.
type Item struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Emoji       string       `json:"emoji,omitempty"`
	Price       int64        `json:"price"`
	Category    ItemCategory `json:"category"`
	CooldownMs  int64        `json:"cooldown_ms"`
	Effect      ItemEffect   `json:"effect,omitempty"`
	DurationMs  int64        `json:"duration_ms"`
	Buyable     bool         `json:"buyable"`
	Consumable  bool         `json:"consumable"`
}

// Cooldown returns the reuse cooldown as a duration
func (i *Item) Cooldown() time.Duration {
	return time.Duration(i.CooldownMs) * time.Millisecond
}

// Duration returns how long the item's effect stays active after use
func (i *Item) Duration() time.Duration {
	return time.Duration(i.DurationMs) * time.Millisecond
}

// HasEffect reports whether using the item does anything
func (i *Item) HasEffect() bool {
	return i.Effect != EffectNone
}
