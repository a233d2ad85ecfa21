package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/heroes/internal/hero"
)

// cardField is one labelled line of the hero card.
type cardField struct {
	label string
	value string
}

func heroFields(h *hero.Hero) []cardField {
	return []cardField{
		{label: "Alter ego", value: h.AlterEgo},
		{label: "Publisher", value: string(h.Publisher)},
		{label: "First appearance", value: h.FirstAppearance},
		{label: "Characters", value: h.Characters},
		{label: "Image", value: h.ImagePath()},
	}
}

// HeroTitle returns the title-cased display name of h.
func HeroTitle(h *hero.Hero) string {
	if h == nil {
		return ""
	}
	// A Caser carries state, so one is built per call.
	return cases.Title(language.English).String(h.Superhero)
}

// RenderHeroCard renders h as a bordered card no wider than width.
func RenderHeroCard(h *hero.Hero, width int) string {
	if h == nil {
		return InfoStyle.Render("No hero selected.")
	}

	cardWidth := width - borderPadding
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(HeroTitle(h)))
	content.WriteString("\n\n")

	labelWidth := 0
	fields := heroFields(h)
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.label))
	}
	for _, f := range fields {
		value := f.value
		if value == "" {
			value = "-"
		}
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s  ", labelWidth, f.label)))
		content.WriteString(ValueStyle.Render(value))
		content.WriteString("\n")
	}

	style := BoxStyle.Width(cardWidth)
	if color, ok := publisherColors[string(h.Publisher)]; ok {
		style = style.BorderForeground(color)
	}
	return style.Render(strings.TrimRight(content.String(), "\n"))
}

// WriteHeroPlain writes h as unstyled "label: value" lines.
func WriteHeroPlain(w io.Writer, h *hero.Hero) error {
	if h == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s (%s)\n", HeroTitle(h), h.ID); err != nil {
		return err
	}
	for _, f := range heroFields(h) {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", f.label, f.value); err != nil {
			return err
		}
	}
	return nil
}
