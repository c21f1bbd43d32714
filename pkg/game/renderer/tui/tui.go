package tui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"

	"spireseed/pkg/engine/terminal"
	"spireseed/pkg/game/act"
	"spireseed/pkg/game/card"
	"spireseed/pkg/game/dungeon"
	"spireseed/pkg/game/locale"
	"spireseed/pkg/game/neow"
	"spireseed/pkg/game/renderer"
)

var _ renderer.Renderer = (*TUIRenderer)(nil)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out    io.Writer
	colour bool
	styles map[renderer.TextStyle]color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a renderer writing to out. Colour is used when out is a
// terminal that accepts it.
func New(out io.Writer) *TUIRenderer {
	return NewWithColour(out, terminal.ColorEnabled(out))
}

// NewWithColour creates a renderer with colour forced on or off.
func NewWithColour(out io.Writer, colour bool) *TUIRenderer {
	t := &TUIRenderer{out: out, colour: colour}
	t.Init()
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleHeading:  {color.FgMagenta, color.OpBold},
		renderer.StyleSubtle:   {color.FgGray},
		renderer.StyleMonster:  {color.FgWhite},
		renderer.StyleElite:    {color.FgRed, color.OpBold},
		renderer.StyleBurning:  {color.FgYellow, color.BgRed, color.OpBold},
		renderer.StyleEvent:    {color.FgCyan},
		renderer.StyleRest:     {color.FgGreen, color.OpBold},
		renderer.StyleShop:     {color.FgYellow},
		renderer.StyleTreasure: {color.FgYellow, color.OpBold},
		renderer.StyleCommon:   {color.FgWhite},
		renderer.StyleUncommon: {color.FgBlue, color.OpBold},
		renderer.StyleRare:     {color.FgYellow, color.OpBold},
		renderer.StyleDenied:   {color.FgRed, color.OpBold},
	}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	s, ok := t.styles[style]
	if !t.colour || !ok {
		return text
	}
	return s.Sprint(text)
}

// FormatText formats a message with the markup system:
//
//	GT{KEY}     catalogue lookup
//	ROOM{kind}  a room kind's name in its colour
//	HEAD{KEY}   a catalogue heading
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = locale.Get(operand)
		case "HEAD":
			val = t.StyleText(locale.Get(operand), renderer.StyleHeading)
		case "ROOM":
			kind, err := dungeon.ParseKind(operand)
			if err != nil {
				val = t.StyleText(operand, renderer.StyleDenied)
				break
			}
			val = t.StyleText(kind.Name(), renderer.KindStyle(kind))
		default:
			return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// FitWidth returns a plain copy of t when a map line would not fit in width
// columns.
func (t *TUIRenderer) FitWidth(width int) *TUIRenderer {
	if !t.colour || width >= dungeon.RenderWidth {
		return t
	}
	return NewWithColour(t.out, false)
}

// ShowMessage writes msg and a newline.
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

func (t *TUIRenderer) glyph(k dungeon.Kind) string {
	return t.StyleText(string(k.Glyph()), renderer.KindStyle(k))
}

// RenderMap draws the map under the act title.
func (t *TUIRenderer) RenderMap(a act.Act, m *dungeon.Map) string {
	return t.StyleText(a.Title(), renderer.StyleHeading) + "\n\n" + m.Render(t.glyph)
}

// RenderElite gives the burning elite's floor, column and buff.
func (t *TUIRenderer) RenderElite(elite *dungeon.EliteInfo) string {
	if elite == nil {
		return t.FormatText("HEAD{HEADING_NO_BURNING_ELITE}")
	}
	return t.FormatText("HEAD{HEADING_BURNING_ELITE}: ") + locale.Getf("BURNING_ELITE_DETAIL",
		act.RowToFloor(elite.Y), elite.X,
		t.StyleText(elite.Buff.Name(), renderer.StyleBurning),
		elite.Index+1, elite.Count)
}

// RenderRewards numbers each reward and colours cards by rarity.
func (t *TUIRenderer) RenderRewards(rewards []card.Reward) string {
	var b strings.Builder
	b.WriteString(t.FormatText("HEAD{HEADING_REWARDS}"))
	for i, reward := range rewards {
		fmt.Fprintf(&b, "\n%2d.", i+1)
		for _, c := range reward {
			rarity, _ := card.RarityOf(c)
			b.WriteString(" ")
			b.WriteString(t.StyleText(c.String(), renderer.RarityStyle(rarity)))
		}
	}
	return b.String()
}

// RenderNeow lists the options as bullets.
func (t *TUIRenderer) RenderNeow(bonuses neow.Bonuses) string {
	var b strings.Builder
	b.WriteString(t.FormatText("HEAD{HEADING_NEOW}"))
	for _, option := range bonuses.Options() {
		b.WriteString("\n- ")
		b.WriteString(option)
	}
	return b.String()
}
