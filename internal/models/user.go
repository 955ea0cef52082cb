package models

// User is an account that owns recipes.
// ImageURL and Bio are pointers so an absent value serializes as JSON null.
type User struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"` // don't expose hash
	ImageURL     *string `json:"image_url"`
	Bio          *string `json:"bio"`
}
