// Command seed creates the development user with a handful of memories so the
// chat endpoints have something to personalise with.
package main

import (
	"context"
	"log"

	"swadesh-ai-be/internal/config"
	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/model"
	"swadesh-ai-be/internal/repository/specification"
	"swadesh-ai-be/internal/repository/unitofwork"
	"swadesh-ai-be/internal/service"
	"swadesh-ai-be/pkg/database"
)

var sampleMemories = []struct {
	content  string
	category entity.MemoryCategory
}{
	{"Prefers replies in Hinglish", entity.MemoryCategoryPersonal},
	{"Works as a backend engineer in Bengaluru", entity.MemoryCategoryWork},
	{"Vegetarian, avoids onion and garlic on Tuesdays", entity.MemoryCategoryHealth},
	{"Preparing for the GATE exam", entity.MemoryCategoryLearning},
}

func main() {
	cfg := config.Load()
	if !cfg.HasDatabase() {
		log.Fatal("Error: DATABASE_URL is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	if err := database.Migrate(db, model.All()...); err != nil {
		log.Fatal("Error: Failed to migrate schema:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	email := "dev@swadesh.local"
	if err := uow.UserRepository().Upsert(ctx, &entity.User{
		Id:        service.DevUserID,
		Email:     &email,
		FirstName: "Dev",
		LastName:  "User",
	}); err != nil {
		log.Fatal("Error: Failed to upsert dev user:", err)
	}

	existing, err := uow.MemoryRepository().Count(ctx, specification.UserOwnedBy{UserID: service.DevUserID})
	if err != nil {
		log.Fatal("Error: Failed to count memories:", err)
	}
	if existing > 0 {
		log.Printf("Dev user already has %d memories, skipping...", existing)
		return
	}

	for _, m := range sampleMemories {
		memory := &entity.Memory{UserId: service.DevUserID, Content: m.content, Category: m.category}
		if err := uow.MemoryRepository().Create(ctx, memory); err != nil {
			log.Printf("Error creating memory %q: %v", m.content, err)
			continue
		}
		log.Printf("Created memory: %s", m.content)
	}

	log.Println("Seeding completed!")
}
