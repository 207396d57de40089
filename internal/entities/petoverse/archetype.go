package petoverse

// BaseStats are the starting attributes of an archetype, each 0-100
type BaseStats struct {
	Health       int32 `json:"health"`
	Energy       int32 `json:"energy"`
	Intelligence int32 `json:"intelligence"`
}

// PetArchetype is a static pet template selectable during creation
type PetArchetype struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Emoji       string    `json:"emoji"`
	Description string    `json:"description"`
	Rarity      Rarity    `json:"rarity"`
	BaseStats   BaseStats `json:"base_stats"`
}
