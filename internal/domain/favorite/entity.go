package favorite

import (
	"errors"
	"time"
)

// ErrNotFound indicates the favorite pair does not exist.
var ErrNotFound = errors.New("favorite not found")

// Favorite marks a bird as favorited by a user.
type Favorite struct {
	UserID    int64     `json:"user_id"`
	BirdID    int64     `json:"bird_id"`
	CreatedAt time.Time `json:"created_at"`
}
