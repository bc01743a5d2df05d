package seed

import (
	"log"

	"github.com/anonto42/notifly/backend/internal/models"
	"github.com/anonto42/notifly/backend/internal/repositories"
)

// defaultUsers is the fixed directory seed set. The dispatcher can only
// notify identities present here.
var defaultUsers = []models.User{
	{
		UserID:      "user1",
		Username:    "Alice",
		Email:       "alice@example.com",
		Preferences: models.Preferences{InApp: true, Email: false},
	},
	{
		UserID:      "user2",
		Username:    "Bob",
		Email:       "bob@example.com",
		Preferences: models.Preferences{InApp: true, Email: false},
	},
}

// Users replaces the entire user directory with the default seed set. Runs
// at startup, before the server accepts traffic.
func Users(userRepo repositories.UserRepository) error {
	if err := userRepo.ReplaceAll(defaultUsers); err != nil {
		return err
	}
	log.Printf("User directory seeded with %d users.", len(defaultUsers))
	return nil
}
