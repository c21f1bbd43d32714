package renderer

import (
	"spireseed/pkg/game/act"
	"spireseed/pkg/game/card"
	"spireseed/pkg/game/dungeon"
	"spireseed/pkg/game/neow"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHeading
	StyleSubtle
	StyleMonster
	StyleElite
	StyleBurning
	StyleEvent
	StyleRest
	StyleShop
	StyleTreasure
	StyleCommon
	StyleUncommon
	StyleRare
	StyleDenied
)

// KindStyle returns the style rooms of kind k are drawn in.
func KindStyle(k dungeon.Kind) TextStyle {
	switch k {
	case dungeon.Monster:
		return StyleMonster
	case dungeon.Elite:
		return StyleElite
	case dungeon.Event:
		return StyleEvent
	case dungeon.Rest:
		return StyleRest
	case dungeon.Shop:
		return StyleShop
	case dungeon.Treasure:
		return StyleTreasure
	case dungeon.Empty, dungeon.Unassigned:
		return StyleSubtle
	}
	return StyleNormal
}

// RarityStyle returns the style cards of rarity r are drawn in.
func RarityStyle(r card.Rarity) TextStyle {
	switch r {
	case card.Common:
		return StyleCommon
	case card.Uncommon:
		return StyleUncommon
	case card.Rare:
		return StyleRare
	}
	return StyleNormal
}

// Renderer defines the interface for output backends.
// Implementations return finished text; callers decide where it goes.
type Renderer interface {
	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// RenderMap draws an act map under its title.
	RenderMap(a act.Act, m *dungeon.Map) string

	// RenderElite describes the burning elite; nil means the map has none.
	RenderElite(elite *dungeon.EliteInfo) string

	// RenderRewards lists card rewards in draw order.
	RenderRewards(rewards []card.Reward) string

	// RenderNeow lists the four Neow options.
	RenderNeow(b neow.Bonuses) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}

// ShowMessage displays msg with the current renderer.
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
