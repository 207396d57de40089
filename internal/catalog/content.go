package catalog

import "github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"

// Canned playground text
const (
	GreetingMessage    = "Hello! I'm so happy to see you! ✨"
	SystemStatusNotice = "Your pet is feeling energetic today!"
	ToyMessageFormat   = "Your pet is playing with the %s! Happiness +10 ✨"
)

var petReplies = []string{
	"That sounds amazing! Tell me more! 🌟",
	"I love spending time with you! 💫",
	"You make me so happy! Let's play more! ✨",
	"I'm learning so much from you! 🚀",
	"This is the best day ever! 🎉",
}

// PetReplies returns the canned replies a pet picks from
func PetReplies() []string {
	return append([]string(nil), petReplies...)
}

var uniqueTraits = []string{"Cosmic Vision", "Stellar Communication", "Dimensional Travel"}

// UniqueTraits are shown on every pet token
func UniqueTraits() []string {
	return append([]string(nil), uniqueTraits...)
}

// Starting traits and commands for a freshly saved pet
var (
	defaultTraits   = []string{"curious", "friendly"}
	defaultCommands = []string{"sit", "roll"}
)

// DefaultTraits returns the traits a new pet is born with
func DefaultTraits() []string {
	return append([]string(nil), defaultTraits...)
}

// DefaultCommands returns the commands a new pet already knows
func DefaultCommands() []string {
	return append([]string(nil), defaultCommands...)
}

var learningLog = []petoverse.LearningEntry{
	{Activity: "First words learned", Progress: "Learned basic greetings"},
	{Activity: "Personality development", Progress: "Showing playful tendencies"},
	{Activity: "Skill discovery", Progress: "Discovered love for music"},
}

// LearningLog returns the starter learning log with the given date on each entry
func LearningLog(date string) []petoverse.LearningEntry {
	out := make([]petoverse.LearningEntry, len(learningLog))
	for i, e := range learningLog {
		e.Date = date
		out[i] = e
	}
	return out
}

var thoughts = []string{
	"%s is thinking about you",
	"%s wonders what's beyond the Crystal Caves",
	"%s practised a new trick while you were away",
	"%s would love to visit the Nebula Gardens",
}

// Thoughts returns the notification templates used by the thinker; each takes the pet name
func Thoughts() []string {
	return append([]string(nil), thoughts...)
}
