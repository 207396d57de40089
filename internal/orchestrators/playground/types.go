package playground

import "github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"

// SendMessageInput defines the request for chatting with a pet
type SendMessageInput struct {
	PlayerID string
	PetID    string
	Text     string
}

// SendMessageOutput holds the stored user message and the pet's reply
type SendMessageOutput struct {
	Message petoverse.ChatMessage
	Reply   petoverse.ChatMessage
}

// PlayWithToyInput defines the request for playing with a toy
type PlayWithToyInput struct {
	PlayerID string
	PetID    string
	ToyID    string
}

// PlayWithToyOutput defines the response for playing with a toy
type PlayWithToyOutput struct {
	Message petoverse.ChatMessage
	Pet     *petoverse.Pet
}

// TrainPetInput defines the request for teaching a command
type TrainPetInput struct {
	PlayerID string
	PetID    string
	Command  string
}

// TrainPetOutput defines the response for teaching a command.
// Learned is false when the pet already knew it.
type TrainPetOutput struct {
	Pet     *petoverse.Pet
	Learned bool
}

// HistoryInput defines the request for reading the chat
type HistoryInput struct {
	PlayerID string
	PetID    string
	Limit    int
}

// HistoryOutput holds messages oldest first
type HistoryOutput struct {
	Messages []petoverse.ChatMessage
}

// ListNotificationsInput defines the request for a pet's notifications
type ListNotificationsInput struct {
	PlayerID string
	PetID    string
	Limit    int
}

// ListNotificationsOutput holds notifications newest first
type ListNotificationsOutput struct {
	Notifications []petoverse.Notification
}
