package tui

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
	"github.com/KirkDiggler/petoverse-api/internal/flow"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case opResultMsg:
		if msg.seq != m.seq || m.busy == "" {
			return m, nil
		}
		m.stop()
		return m.handleResult(msg.msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.stop()
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.busy != "" {
			// Leaving a screen mid-call discards the call's effect
			m.stop()
			m.notice = "Cancelled."
			return m, nil
		}
	}

	if m.busy != "" {
		return m, nil
	}

	switch m.screen {
	case ScreenLogin:
		return m.updateLogin(msg)
	case ScreenCreation:
		return m.updateCreation(msg)
	case ScreenStyling:
		return m.updateStyling(msg)
	case ScreenPetToken:
		return m.updatePetToken(msg)
	case ScreenPlayground:
		return m.updatePlayground(msg)
	case ScreenRewards:
		return m.updateRewards(msg)
	case ScreenMultiverse:
		return m.updateMultiverse(msg)
	}
	return m, nil
}

func (m Model) handleResult(result any) (tea.Model, tea.Cmd) {
	switch r := result.(type) {
	case opErrorMsg:
		m.errorMsg = errors.GetMessage(errors.FromGRPCError(r.err))
		return m, nil

	case opCancelledMsg:
		return m, nil

	case loggedInMsg:
		m.session = r.session
		m.screen = ScreenCreation
		return m, m.start("Preparing creation", startCreationFn(m.clients, m.session.ID))

	case signedUpMsg:
		m.signup = false
		m.resetLoginInputs()
		m.notice = r.message
		return m, nil

	case creationReadyMsg:
		m.draft = r.draft
		m.archetypes = r.archetypes
		m.palettes = r.palettes
		m.accessories = r.accessories
		if r.sizeStep > 0 {
			m.sizeStep = r.sizeStep
		}
		m.toys = r.toys
		m.cursor = 0
		m.summary = r.summary
		m.nameInput.SetValue("")
		if r.resumed {
			m.cursor = max(slices.IndexFunc(m.archetypes, func(a apiv1alpha1.Archetype) bool {
				return a.ID == r.draft.ArchetypeID
			}), 0)
			m.nameInput.SetValue(r.draft.Name)
			m.notice = "Picking up where you left off."
		}
		if r.draft.Step == 2 {
			m.nameInput.Focus()
		} else {
			m.nameInput.Blur()
		}
		return m, nil

	case stepMsg:
		m.draft = r.draft
		m.summary = r.summary
		if !r.advanced {
			switch r.draft.Step {
			case 1:
				m.notice = "Choose a pet type to continue."
			case 2:
				m.notice = "Please enter a name for your pet."
			}
		}
		if r.draft.Step == 2 {
			m.nameInput.Focus()
		} else {
			m.nameInput.Blur()
		}
		return m, nil

	case retreatedMsg:
		if r.exited {
			m.draft = apiv1alpha1.Draft{}
			m.session = apiv1alpha1.Session{}
			m.screen = ScreenLogin
			m.resetLoginInputs()
			return m, nil
		}
		m.draft = r.draft
		m.summary = nil
		if r.draft.Step == 2 {
			m.nameInput.Focus()
		} else {
			m.nameInput.Blur()
		}
		return m, nil

	case stylingOpenedMsg:
		m.screen = ScreenStyling
		m.token = r.token
		m.petName = r.name
		m.archetype = r.archetype
		m.cosmetics = r.cosmetics
		m.panel = panelColors
		m.styleCursor = 0
		m.draft = apiv1alpha1.Draft{}
		return m, nil

	case cosmeticsMsg:
		m.token = r.token
		m.cosmetics = r.cosmetics
		return m, nil

	case petSavedMsg:
		token := r.petToken
		m.petToken = &token
		m.screen = ScreenPetToken
		return m, nil

	case historyMsg:
		m.chat = r.messages
		return m, nil

	case chatMsg:
		m.chat = append(m.chat, r.message, r.reply)
		return m, nil

	case toyPlayedMsg:
		m.chat = append(m.chat, r.message)
		if m.petToken != nil {
			m.petToken.Pet = r.pet
		}
		return m, nil

	case trainedMsg:
		if m.petToken != nil {
			m.petToken.Pet = r.pet
		}
		if r.learned {
			m.notice = fmt.Sprintf("%s learned %q!", r.pet.Name, r.command)
		} else {
			m.notice = fmt.Sprintf("%s already knows %q.", r.pet.Name, r.command)
		}
		return m, nil

	case rewardsMsg:
		m.rewards = r.rewards
		if m.rewardCursor >= len(m.rewards) {
			m.rewardCursor = 0
		}
		return m, nil

	case claimedMsg:
		switch {
		case !r.found:
			m.notice = "That reward no longer exists."
		case r.alreadyClaimed:
			m.notice = "Already claimed."
		default:
			m.notice = fmt.Sprintf("Claimed %s!", r.reward.Title)
		}
		for i := range m.rewards {
			if m.rewards[i].ID == r.reward.ID {
				m.rewards[i] = r.reward
			}
		}
		return m, nil

	case worldMsg:
		m.nodes = r.nodes
		m.stars = r.stars
		if m.nodeCursor >= len(m.nodes) {
			m.nodeCursor = 0
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+n":
		m.signup = !m.signup
		m.errorMsg = ""
		m.notice = ""
		m.resetLoginInputs()
		return m, nil
	case "tab", "down":
		m.focusInput(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusInput(m.focus - 1)
		return m, nil
	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.focusInput(m.focus + 1)
			return m, nil
		}
		email := strings.TrimSpace(m.inputs[0].Value())
		password := m.inputs[1].Value()
		if m.signup {
			return m, m.start("Creating account", signupFn(m.clients, email, password, m.inputs[2].Value()))
		}
		return m, m.start("Logging in", loginFn(m.clients, email, password))
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateCreation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		label := "Going back"
		if flow.At(int(m.draft.Step)).IsFirst() {
			label = "Leaving creation"
		}
		return m, m.start(label, retreatFn(m.clients, m.session.ID, m.draft.ID))
	}

	switch m.draft.Step {
	case 1:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.archetypes)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.archetypes) == 0 {
				return m, nil
			}
			id := m.archetypes[m.cursor].ID
			return m, m.start("Choosing pet type",
				advanceFn(m.clients, m.session.ID, m.draft.ID, selectArchetypeEdit(m.clients, m.session.ID, m.draft.ID, id)))
		}
		return m, nil

	case 2:
		if msg.String() == "enter" {
			name := m.nameInput.Value()
			return m, m.start("Naming pet",
				advanceFn(m.clients, m.session.ID, m.draft.ID, updateNameEdit(m.clients, m.session.ID, m.draft.ID, name)))
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd

	default:
		if msg.String() == "enter" {
			return m, m.start("Creating pet", advanceFn(m.clients, m.session.ID, m.draft.ID, nil))
		}
	}
	return m, nil
}

func (m Model) updateStyling(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.panel = (m.panel + 1) % 3
		m.styleCursor = 0
		return m, nil
	case "shift+tab":
		m.panel = (m.panel + 2) % 3
		m.styleCursor = 0
		return m, nil
	case "ctrl+s":
		return m, m.start("Saving pet", savePetFn(m.clients, m.session.ID, m.token))
	}

	switch m.panel {
	case panelColors:
		switch msg.String() {
		case "up", "k":
			if m.styleCursor > 0 {
				m.styleCursor--
			}
		case "down", "j":
			if m.styleCursor < len(m.palettes)-1 {
				m.styleCursor++
			}
		case "enter", "1":
			if len(m.palettes) > 0 {
				return m, m.start("Updating colour", setPrimaryFn(m.clients, m.token, m.palettes[m.styleCursor].ID))
			}
		case "2":
			if len(m.palettes) > 0 {
				return m, m.start("Updating colour", setSecondaryFn(m.clients, m.token, m.palettes[m.styleCursor].ID))
			}
		}

	case panelSize:
		switch msg.String() {
		case "left", "h", "-":
			return m, m.start("Resizing", setSizeFn(m.clients, m.token, m.cosmetics.Size-m.sizeStep))
		case "right", "l", "+":
			return m, m.start("Resizing", setSizeFn(m.clients, m.token, m.cosmetics.Size+m.sizeStep))
		}

	case panelAccessories:
		switch msg.String() {
		case "up", "k":
			if m.styleCursor > 0 {
				m.styleCursor--
			}
		case "down", "j":
			if m.styleCursor < len(m.accessories)-1 {
				m.styleCursor++
			}
		case "enter", " ":
			if len(m.accessories) > 0 {
				return m, m.start("Updating accessories",
					toggleAccessoryFn(m.clients, m.token, m.accessories[m.styleCursor].ID))
			}
		}
	}
	return m, nil
}

func (m Model) updatePetToken(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		return m.switchTo(ScreenPlayground)
	}
	return m, nil
}

func (m Model) updatePlayground(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m.switchTo(ScreenRewards)
	case "enter":
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" {
			return m, nil
		}
		m.chatInput.SetValue("")

		switch {
		case strings.HasPrefix(text, "/toy "):
			toyID := strings.TrimSpace(strings.TrimPrefix(text, "/toy "))
			return m, m.start("Playing", playWithToyFn(m.clients, m.session.ID, m.petID(), toyID))
		case strings.HasPrefix(text, "/train "):
			command := strings.TrimSpace(strings.TrimPrefix(text, "/train "))
			return m, m.start("Training", trainFn(m.clients, m.session.ID, m.petID(), command))
		}
		return m, m.start("Waiting for a reply", sendMessageFn(m.clients, m.session.ID, m.petID(), text))
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) updateRewards(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m.switchTo(ScreenMultiverse)
	case "up", "k":
		if m.rewardCursor > 0 {
			m.rewardCursor--
		}
	case "down", "j":
		if m.rewardCursor < len(m.rewards)-1 {
			m.rewardCursor++
		}
	case "enter":
		if len(m.rewards) == 0 {
			return m, nil
		}
		reward := m.rewards[m.rewardCursor]
		if reward.Claimed {
			// Claiming is disabled once claimed
			return m, nil
		}
		return m, m.start("Claiming", claimFn(m.clients, m.session.ID, reward.ID))
	}
	return m, nil
}

func (m Model) updateMultiverse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m.switchTo(ScreenPlayground)
	case "up", "k":
		if m.nodeCursor > 0 {
			m.nodeCursor--
		}
	case "down", "j":
		if m.nodeCursor < len(m.nodes)-1 {
			m.nodeCursor++
		}
	case "r":
		return m, m.start("Scanning the multiverse", worldFn(m.clients))
	}
	return m, nil
}

// switchTo shows a world screen and loads its data
func (m Model) switchTo(screen Screen) (tea.Model, tea.Cmd) {
	m.screen = screen
	m.notice = ""
	m.errorMsg = ""

	switch screen {
	case ScreenPlayground:
		m.chatInput.Focus()
		return m, m.start("Loading chat", historyFn(m.clients, m.session.ID, m.petID()))
	case ScreenRewards:
		m.chatInput.Blur()
		return m, m.start("Loading rewards", rewardsFn(m.clients, m.session.ID))
	case ScreenMultiverse:
		m.chatInput.Blur()
		return m, m.start("Scanning the multiverse", worldFn(m.clients))
	}
	return m, nil
}

// sizeSteps is how far size sits above the minimum, in steps
func sizeSteps(size, step float64) int {
	if step <= 0 {
		return 0
	}
	return int(math.Round((size - 0.5) / step))
}
