package builders

import (
	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
	"github.com/bwmarrin/discordgo"
)

// Discord component limits
const (
	maxComponentsPerRow  = 5
	maxSelectOptions     = 25
	maxOptionDescription = 100
)

// SelectOption is one entry in a select menu
type SelectOption struct {
	Label       string
	Value       string
	Description string
	Emoji       string
	Default     bool
}

// SelectConfig configures a multi-value or disabled select menu. When
// given, MinValues is used as-is, so zero means the user may clear the
// selection. Args ride along in the custom ID after the target.
type SelectConfig struct {
	MinValues int
	MaxValues int
	Disabled  bool
	Args      []string
}

// ComponentBuilder builds message component rows. Buttons pack into
// rows of five; each select menu takes a row of its own.
type ComponentBuilder struct {
	ids        *core.CustomIDBuilder
	rows       []discordgo.MessageComponent
	currentRow []discordgo.MessageComponent
}

// NewComponents creates a builder whose custom IDs carry the given
// domain. ids must not be nil.
func NewComponents(ids *core.CustomIDBuilder) *ComponentBuilder {
	return &ComponentBuilder{
		ids:        ids,
		rows:       make([]discordgo.MessageComponent, 0),
		currentRow: make([]discordgo.MessageComponent, 0, maxComponentsPerRow),
	}
}

// Button adds a button to the current row
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	b.addToRow(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.ids.Encode(action, target, args...),
	})
	return b
}

// DisabledButton adds a button that cannot be clicked. It still needs
// an action and target so its custom ID stays unique in the message.
func (b *ComponentBuilder) DisabledButton(label string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	b.addToRow(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.ids.Encode(action, target, args...),
		Disabled: true,
	})
	return b
}

// PrimaryButton adds a blurple button
func (b *ComponentBuilder) PrimaryButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.PrimaryButton, action, target, args...)
}

// SecondaryButton adds a grey button
func (b *ComponentBuilder) SecondaryButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.SecondaryButton, action, target, args...)
}

// SuccessButton adds a green button
func (b *ComponentBuilder) SuccessButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.SuccessButton, action, target, args...)
}

// DangerButton adds a red button
func (b *ComponentBuilder) DangerButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.DangerButton, action, target, args...)
}

// SelectMenu adds a select menu on its own row. Options beyond the
// Discord limit of 25 are dropped.
func (b *ComponentBuilder) SelectMenu(placeholder, action, target string, options []SelectOption, config ...SelectConfig) *ComponentBuilder {
	if len(options) > maxSelectOptions {
		options = options[:maxSelectOptions]
	}

	menuOptions := make([]discordgo.SelectMenuOption, len(options))
	for i, opt := range options {
		menuOptions[i] = discordgo.SelectMenuOption{
			Label:       truncate(opt.Label, maxOptionDescription),
			Value:       opt.Value,
			Description: truncate(opt.Description, maxOptionDescription),
			Default:     opt.Default,
		}
		if opt.Emoji != "" {
			menuOptions[i].Emoji = &discordgo.ComponentEmoji{Name: opt.Emoji}
		}
	}

	minValues := 1
	var args []string
	menu := discordgo.SelectMenu{
		Placeholder: placeholder,
		Options:     menuOptions,
	}
	if len(config) > 0 {
		cfg := config[0]
		minValues = cfg.MinValues
		menu.MaxValues = cfg.MaxValues
		menu.Disabled = cfg.Disabled
		args = cfg.Args
	}
	menu.CustomID = b.ids.Encode(action, target, args...)
	if menu.MaxValues > len(options) {
		menu.MaxValues = len(options)
	}
	if minValues > len(options) {
		minValues = len(options)
	}
	menu.MinValues = &minValues

	b.NewRow()
	b.rows = append(b.rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{menu},
	})
	return b
}

// NewRow closes the current button row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{Components: b.currentRow})
		b.currentRow = make([]discordgo.MessageComponent, 0, maxComponentsPerRow)
	}
	return b
}

// Build returns the action rows built so far
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

func (b *ComponentBuilder) addToRow(component discordgo.MessageComponent) {
	if len(b.currentRow) >= maxComponentsPerRow {
		b.NewRow()
	}
	b.currentRow = append(b.currentRow, component)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
