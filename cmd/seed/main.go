package main

import (
	"fmt"

	"simple-sns/internal/model"
	"simple-sns/pkg/config"
	"simple-sns/pkg/database"
	"simple-sns/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	users := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin123", "ADMIN"},
		{"alice", "password123", "USER"},
		{"bob", "password123", "USER"},
	}

	created := make(map[string]*model.UserModel)
	for _, u := range users {
		var existing model.UserModel
		if err := db.Where("username = ?", u.username).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", u.username)
			created[u.username] = &existing
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &model.UserModel{
			Username: u.username,
			Password: string(hashed),
			Role:     u.role,
		}
		if err := db.Create(user).Error; err != nil {
			return err
		}
		log.Info("Created user %s", u.username)
		created[u.username] = user
	}

	posts := []struct {
		owner string
		title string
		body  string
	}{
		{"alice", "hello", "first post"},
		{"alice", "second", "more words"},
		{"bob", "greetings", "hello from bob"},
	}

	var createdPosts []*model.PostModel
	for _, p := range posts {
		post := &model.PostModel{
			Title:  p.title,
			Body:   p.body,
			UserID: created[p.owner].ID,
		}
		if err := db.Create(post).Error; err != nil {
			return err
		}
		log.Info("Created post %q by %s", p.title, p.owner)
		createdPosts = append(createdPosts, post)
	}

	if len(createdPosts) > 0 {
		like := &model.LikeModel{
			UserID: created["bob"].ID,
			PostID: createdPosts[0].ID,
		}
		if err := db.Create(like).Error; err != nil {
			return err
		}
		log.Info("Created like by bob on %q", createdPosts[0].Title)
	}

	return nil
}
