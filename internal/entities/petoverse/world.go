package petoverse

// Toy is a playground item
type Toy struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// NodeType is the activity offered at a galaxy node
type NodeType string

// Galaxy node types
const (
	NodePlayground NodeType = "playground"
	NodeTraining   NodeType = "training"
	NodeSocial     NodeType = "social"
	NodeBattle     NodeType = "battle"
	NodeTreasure   NodeType = "treasure"
)

// GalaxyNode is a location on the multiverse map. X and Y are relative, 0-1.
type GalaxyNode struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     NodeType `json:"type"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Pets     int32    `json:"pets"`
	Distance string   `json:"distance"`
}

// Star is a decorative point on the multiverse map
type Star struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

// MessageType says who authored a chat message
type MessageType string

// Chat message authors
const (
	MessageUser   MessageType = "user"
	MessagePet    MessageType = "pet"
	MessageSystem MessageType = "system"
)

// ChatMessage is a playground chat line
type ChatMessage struct {
	ID     int64       `json:"id"`
	Type   MessageType `json:"type"`
	Text   string      `json:"text"`
	SentAt int64       `json:"sent_at"`
}

// Notification is something a pet wants its owner to know
type Notification struct {
	PetID     string `json:"pet_id"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"created_at"`
}

// Session is the result of a (mock) login
type Session struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
}

// Screen names returned as navigation targets
const (
	ScreenLogin       = "login"
	ScreenSignup      = "signup"
	ScreenPetCreation = "pet-creation"
	ScreenPetStyling  = "pet-styling"
	ScreenPetToken    = "pet-token"
)
