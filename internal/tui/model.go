// Package tui is the terminal front-end for Petoverse. It drives the same
// screens as the mobile app against a running server.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
)

// DefaultTimeout bounds every server call the client makes
const DefaultTimeout = 30 * time.Second

// chatScrollback is how many chat lines the playground shows
const chatScrollback = 12

// Model is the terminal client state
type Model struct {
	clients Clients
	timeout time.Duration

	screen Screen
	width  int
	height int

	// Operation state. seq identifies the newest call; cancel aborts it.
	busy     string
	seq      int
	cancel   context.CancelFunc
	spinner  spinner.Model
	errorMsg string
	notice   string

	// Login
	signup   bool
	inputs   []textinput.Model
	focus    int
	session  apiv1alpha1.Session
	quitting bool

	// Creation
	archetypes []apiv1alpha1.Archetype
	cursor     int
	draft      apiv1alpha1.Draft
	nameInput  textinput.Model
	summary    *apiv1alpha1.DraftSummary

	// Styling
	token       string
	petName     string
	archetype   apiv1alpha1.Archetype
	cosmetics   apiv1alpha1.Cosmetics
	palettes    []apiv1alpha1.Palette
	accessories []apiv1alpha1.Accessory
	sizeStep    float64
	panel       stylePanel
	styleCursor int

	// Saved pet and the world around it
	petToken     *apiv1alpha1.PetToken
	chat         []apiv1alpha1.ChatMessage
	chatInput    textinput.Model
	toys         []apiv1alpha1.Toy
	rewards      []apiv1alpha1.Reward
	rewardCursor int
	nodes        []apiv1alpha1.GalaxyNode
	stars        []apiv1alpha1.Star
	nodeCursor   int
}

// NewModel creates a client model that starts on the login screen
func NewModel(clients Clients, timeout time.Duration) Model {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	name := textinput.New()
	name.Placeholder = "Enter a name..."
	name.CharLimit = 20

	chat := textinput.New()
	chat.Placeholder = "Say something, /toy <id> or /train <command>"

	m := Model{
		clients:   clients,
		timeout:   timeout,
		screen:    ScreenLogin,
		spinner:   s,
		nameInput: name,
		chatInput: chat,
		sizeStep:  0.1,
		width:     80,
		height:    24,
	}
	m.resetLoginInputs()

	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Screen returns the screen being shown
func (m Model) Screen() Screen {
	return m.screen
}

// Busy reports the name of the call in flight, if any
func (m Model) Busy() string {
	return m.busy
}

// Error returns the message shown for the last failed call
func (m Model) Error() string {
	return m.errorMsg
}

func (m *Model) resetLoginInputs() {
	count := 2
	if m.signup {
		count = 3
	}

	m.inputs = make([]textinput.Model, count)
	for i := range m.inputs {
		in := textinput.New()
		switch i {
		case 0:
			in.Placeholder = "Email"
		case 1:
			in.Placeholder = "Password"
			in.EchoMode = textinput.EchoPassword
		case 2:
			in.Placeholder = "Confirm password"
			in.EchoMode = textinput.EchoPassword
		}
		m.inputs[i] = in
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *Model) focusInput(i int) {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// start begins a call named op, cancelling whatever was in flight
func (m *Model) start(op string, fn func(context.Context) (any, error)) tea.Cmd {
	m.stop()

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	m.seq++
	m.busy = op
	m.cancel = cancel
	m.errorMsg = ""
	m.notice = ""

	return tea.Batch(call(ctx, m.seq, op, fn), m.spinner.Tick)
}

// stop cancels the call in flight. Its result, if it still arrives, is dropped.
func (m *Model) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.busy = ""
}

func (m Model) petID() string {
	if m.petToken == nil {
		return ""
	}
	return m.petToken.Pet.ID
}
