package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/petoverse-api/internal/flow"
)

const (
	mapWidth  = 48
	mapHeight = 12
	barWidth  = 20
)

// View renders the current screen
func (m Model) View() string {
	if m.quitting {
		return "Bye! 👋\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("🐾 Petoverse · " + m.screen.String()))
	b.WriteString("\n")

	switch m.screen {
	case ScreenLogin:
		b.WriteString(m.viewLogin())
	case ScreenCreation:
		b.WriteString(m.viewCreation())
	case ScreenStyling:
		b.WriteString(m.viewStyling())
	case ScreenPetToken:
		b.WriteString(m.viewPetToken())
	case ScreenPlayground, ScreenRewards, ScreenMultiverse:
		b.WriteString(m.viewTabs())
		b.WriteString("\n\n")
		switch m.screen {
		case ScreenPlayground:
			b.WriteString(m.viewPlayground())
		case ScreenRewards:
			b.WriteString(m.viewRewards())
		default:
			b.WriteString(m.viewMultiverse())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString(helpStyle.Render(m.help()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewStatus() string {
	var b strings.Builder
	if m.busy != "" {
		b.WriteString(m.spinner.View() + " " + m.busy + "...\n")
	}
	if m.errorMsg != "" {
		b.WriteString(errorStyle.Render(m.errorMsg) + "\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	}
	return b.String()
}

func (m Model) help() string {
	switch m.screen {
	case ScreenLogin:
		return "tab: next field • enter: submit • ctrl+n: toggle sign up • ctrl+c: quit"
	case ScreenCreation:
		wizard := flow.At(int(m.draft.Step))
		switch {
		case wizard.IsFirst():
			return "↑/↓: choose • enter: continue • esc: log out"
		case wizard.IsLast():
			return "enter: create pet • esc: back"
		default:
			return "enter: continue • esc: back"
		}
	case ScreenStyling:
		return "tab: panel • 1/enter: primary • 2: secondary • ←/→: size • space: accessory • ctrl+s: save"
	case ScreenPetToken:
		return "enter: go to the playground"
	case ScreenPlayground:
		return "enter: send • /toy <id> • /train <command> • tab: rewards"
	case ScreenRewards:
		return "↑/↓: choose • enter: claim • tab: multiverse"
	default:
		return "↑/↓: choose node • r: rescan • tab: playground"
	}
}

func (m Model) viewLogin() string {
	var b strings.Builder
	if m.signup {
		b.WriteString("Create Account\n\n")
	} else {
		b.WriteString("Welcome Back\n\n")
	}
	for _, in := range m.inputs {
		b.WriteString(in.View() + "\n")
	}
	return b.String()
}

func (m Model) viewCreation() string {
	var b strings.Builder

	step, total := m.draft.Step, m.draft.TotalSteps
	if total == 0 {
		total = 3
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Step %d of %d", step, total)))
	b.WriteString("\n\n")

	switch step {
	case 1:
		b.WriteString("Choose Your Pet Type\n\n")
		for i, a := range m.archetypes {
			line := fmt.Sprintf("%s %s  %s", a.Emoji, a.Name, rarityStyle(a.Rarity).Render(a.Rarity))
			if a.ID == m.draft.ArchetypeID {
				line += successStyle.Render(" ✓")
			}
			if i == m.cursor {
				b.WriteString(selectedItemStyle.Render(line) + "\n")
				b.WriteString(itemStyle.Render(mutedStyle.Render(a.Description)) + "\n")
			} else {
				b.WriteString(itemStyle.Render(line) + "\n")
			}
		}

	case 2:
		b.WriteString("Name Your Pet\n\n")
		b.WriteString(m.nameInput.View() + "\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d/20 characters", len([]rune(m.nameInput.Value())))))
		b.WriteString("\n")

	default:
		b.WriteString("Confirm Your Pet\n\n")
		if m.summary != nil {
			a := m.summary.Archetype
			card := fmt.Sprintf("%s %s\n%s · %s\n\nHealth       %s\nEnergy       %s\nIntelligence %s",
				a.Emoji, m.summary.Name,
				a.Name, rarityStyle(a.Rarity).Render(a.Rarity),
				bar(a.Health, 100), bar(a.Energy, 100), bar(a.Intelligence, 100))
			b.WriteString(cardStyle.Render(card) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewStyling() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", m.archetype.Emoji, petStyle.Render(m.petName)))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Primary %s · Secondary %s · Size %.1f",
		m.cosmetics.PrimaryColor, m.cosmetics.SecondaryColor, m.cosmetics.Size)))
	b.WriteString("\n\n")

	tabs := []string{"Colors", "Size", "Accessories"}
	for i, t := range tabs {
		if stylePanel(i) == m.panel {
			b.WriteString(activeTabStyle.Render(t))
		} else {
			b.WriteString(tabStyle.Render(t))
		}
	}
	b.WriteString("\n\n")

	switch m.panel {
	case panelColors:
		for i, p := range m.palettes {
			line := p.Name
			var marks []string
			if p.ID == m.cosmetics.PrimaryColor {
				marks = append(marks, "primary")
			}
			if p.ID == m.cosmetics.SecondaryColor {
				marks = append(marks, "secondary")
			}
			if len(marks) > 0 {
				line += mutedStyle.Render(" (" + strings.Join(marks, ", ") + ")")
			}
			b.WriteString(m.item(i == m.styleCursor, line))
		}

	case panelSize:
		steps := sizeSteps(m.cosmetics.Size, m.sizeStep)
		maxSteps := sizeSteps(1.5, m.sizeStep)
		b.WriteString(fmt.Sprintf("0.5 [%s%s] 1.5\n",
			strings.Repeat("■", steps), strings.Repeat("·", max(maxSteps-steps, 0))))

	case panelAccessories:
		for i, a := range m.accessories {
			box := "[ ]"
			if slices.Contains(m.cosmetics.Accessories, a.ID) {
				box = "[x]"
			}
			b.WriteString(m.item(i == m.styleCursor, fmt.Sprintf("%s %s %s", box, a.Emoji, a.Name)))
		}
	}
	return b.String()
}

func (m Model) viewPetToken() string {
	if m.petToken == nil {
		return ""
	}
	pet := m.petToken.Pet
	a := m.petToken.Archetype

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s  %s\n", a.Emoji, petStyle.Render(pet.Name), rarityStyle(a.Rarity).Render(a.Rarity)))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s · Level %d", a.Name, pet.Stats.Level)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Experience   %s %d/%d\n", bar(pet.Stats.Experience, pet.Stats.MaxExperience),
		pet.Stats.Experience, pet.Stats.MaxExperience))
	b.WriteString(fmt.Sprintf("Intelligence %s\n", bar(pet.Stats.Intelligence, 100)))
	b.WriteString(fmt.Sprintf("Creativity   %s\n", bar(pet.Stats.Creativity, 100)))
	b.WriteString(fmt.Sprintf("Loyalty      %s\n", bar(pet.Stats.Loyalty, 100)))
	b.WriteString(fmt.Sprintf("Energy       %s\n", bar(pet.Stats.Energy, 100)))
	b.WriteString(fmt.Sprintf("Happiness    %s\n\n", bar(pet.Stats.Happiness, 100)))

	b.WriteString("Traits: " + strings.Join(m.petToken.UniqueTraits, ", ") + "\n")
	b.WriteString("Commands: " + strings.Join(pet.Commands, ", ") + "\n\n")

	b.WriteString("Learning Log\n")
	for _, entry := range m.petToken.LearningLog {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s  %s  %s", entry.Date, entry.Activity, entry.Progress)) + "\n")
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewTabs() string {
	var parts []string
	for _, s := range []Screen{ScreenPlayground, ScreenRewards, ScreenMultiverse} {
		if s == m.screen {
			parts = append(parts, activeTabStyle.Render(s.String()))
		} else {
			parts = append(parts, tabStyle.Render(s.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewPlayground() string {
	var b strings.Builder
	speaker := "Pet"
	if m.petToken != nil {
		pet := m.petToken.Pet
		speaker = pet.Name
		b.WriteString(fmt.Sprintf("%s %s  Happiness %s\n\n",
			m.petToken.Archetype.Emoji, petStyle.Render(pet.Name), bar(pet.Stats.Happiness, 100)))
	}

	start := max(len(m.chat)-chatScrollback, 0)
	for _, msg := range m.chat[start:] {
		switch msg.Type {
		case "user":
			b.WriteString(userStyle.Render("You: ") + msg.Text + "\n")
		case "pet":
			b.WriteString(petStyle.Render(speaker+": ") + msg.Text + "\n")
		default:
			b.WriteString(systemStyle.Render(msg.Text) + "\n")
		}
	}

	if len(m.toys) > 0 {
		var toys []string
		for _, t := range m.toys {
			toys = append(toys, t.Emoji+" "+t.ID)
		}
		b.WriteString("\n" + mutedStyle.Render("Toys: "+strings.Join(toys, "  ")) + "\n")
	}

	b.WriteString("\n" + m.chatInput.View() + "\n")
	return b.String()
}

func (m Model) viewRewards() string {
	var b strings.Builder
	for i, r := range m.rewards {
		status := ""
		if r.Claimed {
			status = successStyle.Render(" ✓ claimed")
		}
		line := fmt.Sprintf("%s  +%d %s  %s%s", r.Title, r.Value, r.Type, rarityStyle(r.Rarity).Render(r.Rarity), status)
		b.WriteString(m.item(i == m.rewardCursor, line))
		if i == m.rewardCursor {
			b.WriteString(itemStyle.Render(mutedStyle.Render(r.Description)) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewMultiverse() string {
	grid := make([][]rune, mapHeight)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", mapWidth))
	}
	plot := func(x, y float64, r rune) {
		col := min(int(x*mapWidth), mapWidth-1)
		row := min(int(y*mapHeight), mapHeight-1)
		if col >= 0 && row >= 0 {
			grid[row][col] = r
		}
	}

	for _, s := range m.stars {
		r := '·'
		if s.Size >= 3 {
			r = '*'
		}
		plot(s.X, s.Y, r)
	}
	for i, n := range m.nodes {
		r := '○'
		if i == m.nodeCursor {
			r = '◉'
		}
		plot(n.X, n.Y, r)
	}

	var b strings.Builder
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	b.WriteString(cardStyle.Render(strings.Join(lines, "\n")) + "\n\n")

	for i, n := range m.nodes {
		line := fmt.Sprintf("%s  %s · %d pets · %s", n.Name, n.Type, n.Pets, n.Distance)
		b.WriteString(m.item(i == m.nodeCursor, line))
	}
	return b.String()
}

func (m Model) item(selected bool, line string) string {
	if selected {
		return selectedItemStyle.Render(line) + "\n"
	}
	return itemStyle.Render(line) + "\n"
}

func bar(value, maxValue int32) string {
	if maxValue <= 0 {
		maxValue = 100
	}
	filled := int(value) * barWidth / int(maxValue)
	filled = min(max(filled, 0), barWidth)
	return successStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))
}
