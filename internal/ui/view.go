package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"daydash/internal/status"
)

// eventDetailIndent lines event details up under the title column.
const eventDetailIndent = "                  "

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenLogin:
		return m.viewLogin()
	case screenLoading:
		return m.viewLoading()
	default:
		return m.viewDashboard()
	}
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Daydash"))
	b.WriteString("\n\n")
	b.WriteString("Sign in with your Google account to see your calendar and tasks.\n\n")
	b.WriteString("Open this URL in a browser, grant access, then paste the code below:\n\n")
	b.WriteString(mutedStyle.Render(m.session.AuthURL()))
	b.WriteString("\n\n")
	b.WriteString(m.codeInput.View())
	b.WriteString("\n")
	if m.authPending {
		b.WriteString("\n" + m.spin.View() + " Signing in...\n")
	}
	if m.loginNotice != "" {
		b.WriteString("\n" + errorStyle.Render(m.loginNotice) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter: sign in • esc: quit"))
	return b.String()
}

func (m Model) viewLoading() string {
	return fmt.Sprintf("\n %s Loading your dashboard...\n\n%s",
		m.spin.View(),
		helpStyle.Render(" q: quit"))
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.quote.visible {
		b.WriteString(m.viewQuote())
	} else if m.activeTab == tabCalendar {
		b.WriteString(m.viewCalendar())
	} else {
		b.WriteString(m.viewTasks())
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewHelp())
	return b.String()
}

func (m Model) viewHeader() string {
	greeting := "Welcome"
	email := ""
	if p := m.session.Profile(); p != nil {
		greeting = "Welcome, " + p.Name
		email = p.Email
	}
	line := titleStyle.Render(greeting)
	if email != "" {
		line += "  " + emailStyle.Render(email)
	}
	return line
}

func (m Model) viewTabs() string {
	calTab := tabStyle.Render("1 Calendar")
	taskTab := tabStyle.Render("2 Tasks")
	if m.activeTab == tabCalendar {
		calTab = activeTabStyle.Render("1 Calendar")
	} else {
		taskTab = activeTabStyle.Render("2 Tasks")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, calTab, " ", taskTab)
}

func (m Model) viewCalendar() string {
	if m.calendarLoading {
		return m.spin.View() + " Loading events..."
	}
	if m.calendarErr != "" {
		return errorStyle.Render(m.calendarErr)
	}
	if len(m.days) == 0 {
		return mutedStyle.Render("No upcoming events found in your calendar.")
	}

	var b strings.Builder
	for i, day := range m.days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(dateHeaderStyle.Render(day.Header()))
		b.WriteString("\n")
		for _, ev := range day.Events {
			b.WriteString("  ")
			b.WriteString(eventTimeStyle.Render(fmt.Sprintf("%-15s", ev.TimeRange())))
			b.WriteString(" ")
			b.WriteString(ev.DisplayTitle())
			if ev.Location != "" {
				b.WriteString(" " + mutedStyle.Render("@ "+Truncate(ev.Location, 40)))
			}
			b.WriteString("\n")
			if ev.Description != "" {
				b.WriteString(eventDetailIndent + mutedStyle.Render(Truncate(ev.Description, notesLimit)) + "\n")
			}
			if ev.MeetLink != "" {
				b.WriteString(eventDetailIndent + mutedStyle.Render("Join: "+ev.MeetLink) + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewTasks() string {
	if m.form.visible() {
		return m.viewAddForm()
	}
	if m.tasksLoading {
		return m.spin.View() + " Loading tasks..."
	}
	if m.tasksErr != "" {
		return errorStyle.Render(m.tasksErr)
	}
	if m.engine == nil || m.engine.ActiveListID() == "" {
		return mutedStyle.Render("No task lists found. Create a task list in Google Tasks first.")
	}

	var b strings.Builder
	b.WriteString(dateHeaderStyle.Render(m.engine.ActiveListTitle()))
	b.WriteString("\n")

	if len(m.views) == 0 && !m.adding {
		b.WriteString(mutedStyle.Render("No tasks found in this list."))
		return b.String()
	}

	now := time.Now()
	for i, v := range m.views {
		b.WriteString(m.renderTaskRow(v, i == m.cursor, now))
		b.WriteString("\n")
	}
	if m.adding {
		b.WriteString(mutedStyle.Render("  " + m.spin.View() + " Adding task..."))
		b.WriteString("\n")
	}
	if m.alert != "" {
		b.WriteString("\n" + alertStyle.Render(m.alert))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderTaskRow(v status.View, selected bool, now time.Time) string {
	checkbox := "[ ]"
	label := labelTodoStyle.Render(v.Status.String())
	switch v.Status {
	case status.InProgress:
		checkbox = "[~]"
		label = labelInProgressStyle.Render(v.Status.String())
	case status.Completed:
		checkbox = "[x]"
		label = labelCompletedStyle.Render(v.Status.String())
	}

	title := v.Task.Title
	switch v.Status {
	case status.Completed:
		title = completedStyle.Render(title)
	case status.InProgress:
		title = inProgressStyle.Render(title)
	}

	row := fmt.Sprintf("%s %s %s", checkbox, title, label)
	if !v.Task.Due.IsZero() {
		badge := DueBadge(v.Task.Due, now)
		if badge == "Today" {
			row += " " + badgeTodayStyle.Render(badge)
		} else {
			row += " " + badgeStyle.Render(badge)
		}
	}
	if v.Task.Notes != "" {
		row += "\n      " + mutedStyle.Render(Truncate(v.Task.Notes, notesLimit))
	}

	cursor := "  "
	if selected {
		cursor = selectedStyle.Render("> ")
	}
	return cursor + row
}

func (m Model) viewAddForm() string {
	var b strings.Builder
	b.WriteString(dateHeaderStyle.Render("New task"))
	b.WriteString("\n\n")
	b.WriteString("Title  " + m.form.title.View() + "\n")
	b.WriteString("Notes  " + m.form.notes.View() + "\n")
	b.WriteString("Due    " + m.form.due.View() + "\n")
	if m.form.err != "" {
		b.WriteString("\n" + errorStyle.Render(m.form.err) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter: save • tab: next field • esc: cancel"))
	return formBoxStyle.Render(b.String())
}

func (m Model) viewQuote() string {
	var b strings.Builder
	if m.quote.loading {
		b.WriteString(m.spin.View() + " Fetching inspiration...")
	} else if m.quote.err != "" {
		b.WriteString(errorStyle.Render(m.quote.err))
	} else {
		b.WriteString(fmt.Sprintf("%q", m.quote.quote.Quote))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("- " + m.quote.quote.Author))
	}
	b.WriteString("\n\n" + helpStyle.Render("r: another • esc: close"))
	return quoteBoxStyle.Render(b.String())
}

func (m Model) viewHelp() string {
	if m.quote.visible || m.form.visible() {
		return ""
	}
	items := []string{"tab: switch", "r: refresh", "i: quote", "s: sign out", "q: quit"}
	if m.activeTab == tabTasks {
		items = append([]string{"j/k: move", "space: cycle status", "a: add task"}, items...)
	}
	return helpStyle.Render(strings.Join(items, " • "))
}
