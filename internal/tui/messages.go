package tui

import (
	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
)

// Screen determines which screen to render
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenCreation
	ScreenStyling
	ScreenPetToken
	ScreenPlayground
	ScreenRewards
	ScreenMultiverse
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "Login"
	case ScreenCreation:
		return "Create Pet"
	case ScreenStyling:
		return "Style"
	case ScreenPetToken:
		return "Pet Token"
	case ScreenPlayground:
		return "Playground"
	case ScreenRewards:
		return "Rewards"
	case ScreenMultiverse:
		return "Multiverse"
	default:
		return "Unknown"
	}
}

// stylePanel is the active tab of the styling screen
type stylePanel int

const (
	panelColors stylePanel = iota
	panelSize
	panelAccessories
)

// opResultMsg wraps the outcome of an async call with the sequence number it
// was started under. Results for a superseded or cancelled call are dropped.
type opResultMsg struct {
	seq int
	msg any
}

// Operation outcomes

type opErrorMsg struct {
	op  string
	err error
}

type opCancelledMsg struct {
	op string
}

// Screen data

type loggedInMsg struct {
	session apiv1alpha1.Session
}

type signedUpMsg struct {
	message string
}

type creationReadyMsg struct {
	draft       apiv1alpha1.Draft
	resumed     bool
	summary     *apiv1alpha1.DraftSummary
	archetypes  []apiv1alpha1.Archetype
	palettes    []apiv1alpha1.Palette
	accessories []apiv1alpha1.Accessory
	sizeStep    float64
	toys        []apiv1alpha1.Toy
}

type stepMsg struct {
	draft    apiv1alpha1.Draft
	advanced bool
	summary  *apiv1alpha1.DraftSummary
}

type retreatedMsg struct {
	draft  apiv1alpha1.Draft
	exited bool
}

type stylingOpenedMsg struct {
	token     string
	name      string
	archetype apiv1alpha1.Archetype
	cosmetics apiv1alpha1.Cosmetics
}

type cosmeticsMsg struct {
	token     string
	cosmetics apiv1alpha1.Cosmetics
}

type petSavedMsg struct {
	petToken apiv1alpha1.PetToken
}

type historyMsg struct {
	messages []apiv1alpha1.ChatMessage
}

type chatMsg struct {
	message apiv1alpha1.ChatMessage
	reply   apiv1alpha1.ChatMessage
}

type toyPlayedMsg struct {
	message apiv1alpha1.ChatMessage
	pet     apiv1alpha1.Pet
}

type trainedMsg struct {
	command string
	learned bool
	pet     apiv1alpha1.Pet
}

type rewardsMsg struct {
	rewards []apiv1alpha1.Reward
}

type claimedMsg struct {
	reward         apiv1alpha1.Reward
	found          bool
	alreadyClaimed bool
}

type worldMsg struct {
	nodes []apiv1alpha1.GalaxyNode
	stars []apiv1alpha1.Star
}
