package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	emailStyle = lipgloss.NewStyle().
			Faint(true)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Faint(true)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Underline(true)

	dateHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)

	eventTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	mutedStyle = lipgloss.NewStyle().
			Faint(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	completedStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Faint(true)

	inProgressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	labelTodoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	labelInProgressStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	labelCompletedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	badgeTodayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Faint(true).
			MarginTop(1)

	quoteBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			MarginTop(1)

	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			MarginTop(1)
)
