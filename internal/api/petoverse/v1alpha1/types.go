package v1alpha1

// Archetype is a selectable pet type
type Archetype struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Emoji        string `json:"emoji"`
	Description  string `json:"description"`
	Rarity       string `json:"rarity"`
	Health       int32  `json:"health"`
	Energy       int32  `json:"energy"`
	Intelligence int32  `json:"intelligence"`
}

// Cosmetics is a pet's visual configuration
type Cosmetics struct {
	PrimaryColor   string   `json:"primary_color"`
	SecondaryColor string   `json:"secondary_color"`
	Size           float64  `json:"size"`
	Accessories    []string `json:"accessories"`
}

// Palette is a selectable colour
type Palette struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Accessory is a wearable item
type Accessory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// Draft is a pet creation wizard in progress
type Draft struct {
	ID          string    `json:"id"`
	PlayerID    string    `json:"player_id"`
	Step        int32     `json:"step"`
	TotalSteps  int32     `json:"total_steps"`
	ArchetypeID string    `json:"archetype_id,omitempty"`
	Name        string    `json:"name,omitempty"`
	Cosmetics   Cosmetics `json:"cosmetics"`
	ExpiresAt   int64     `json:"expires_at"`
}

// DraftSummary is the confirmation step's view of a draft
type DraftSummary struct {
	Name      string    `json:"name"`
	Archetype Archetype `json:"archetype"`
	Progress  float64   `json:"progress"`
}

// PetStats tracks a saved pet's growth
type PetStats struct {
	Level         int32 `json:"level"`
	Experience    int32 `json:"experience"`
	MaxExperience int32 `json:"max_experience"`
	Intelligence  int32 `json:"intelligence"`
	Creativity    int32 `json:"creativity"`
	Loyalty       int32 `json:"loyalty"`
	Energy        int32 `json:"energy"`
	Happiness     int32 `json:"happiness"`
}

// Pet is a saved pet
type Pet struct {
	ID           string    `json:"id"`
	PlayerID     string    `json:"player_id"`
	Name         string    `json:"name"`
	ArchetypeID  string    `json:"archetype_id"`
	Cosmetics    Cosmetics `json:"cosmetics"`
	Stats        PetStats  `json:"stats"`
	Traits       []string  `json:"traits"`
	Commands     []string  `json:"commands"`
	TrainedWords []string  `json:"trained_words"`
	CreatedAt    int64     `json:"created_at"`
}

// LearningEntry is one line of a pet's learning log
type LearningEntry struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
	Progress string `json:"progress"`
}

// PetToken is the finished pet card
type PetToken struct {
	Pet          Pet             `json:"pet"`
	Archetype    Archetype       `json:"archetype"`
	UniqueTraits []string        `json:"unique_traits"`
	LearningLog  []LearningEntry `json:"learning_log"`
}

// Reward is a claimable reward
type Reward struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Value       int32  `json:"value"`
	Rarity      string `json:"rarity"`
	Claimed     bool   `json:"claimed"`
}

// ChatMessage is one line of playground chat
type ChatMessage struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Text   string `json:"text"`
	SentAt int64  `json:"sent_at"`
}

// Notification is something a pet wants to tell its owner
type Notification struct {
	PetID     string `json:"pet_id"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"created_at"`
}

// Toy is a playground toy
type Toy struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// GalaxyNode is a destination on the multiverse map
type GalaxyNode struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Pets     int32   `json:"pets"`
	Distance string  `json:"distance"`
}

// Star is a decorative point on the multiverse map
type Star struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

// Session is a logged-in session
type Session struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
}
