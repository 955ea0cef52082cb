package models

// Recipe is a single recipe record. UserID is the owning account; responses
// carry the owner's public representation nested under "user" instead.
type Recipe struct {
	ID                int    `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete int    `json:"minutes_to_complete"`
	UserID            int    `json:"-"`
	User              User   `json:"user"`
}
