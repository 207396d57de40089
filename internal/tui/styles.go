package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	warningColor = lipgloss.Color("226") // Yellow
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(warningColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	spinnerStyle = lipgloss.NewStyle().Foreground(accentColor)
	helpStyle    = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
	petStyle     = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	userStyle    = lipgloss.NewStyle().Foreground(primaryColor)
	systemStyle  = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Underline(true).
			PaddingRight(2)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingRight(2)
)

func rarityStyle(rarity string) lipgloss.Style {
	switch rarity {
	case "Rare":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	case "Epic":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("135"))
	case "Legendary", "Mythic":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	default:
		return mutedStyle
	}
}
