package main

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"myflix_backend/config"
	"myflix_backend/internal/feature/movies/domain/entity"
	infradb "myflix_backend/internal/platform/db"
)

// seedMovies はカタログが空の場合に投入する初期データです。
var seedMovies = []entity.Movie{
	{
		Title:            "The Fountain",
		Description:      "...",
		GenreName:        "Drama",
		GenreDescription: "A drama is a genre of narrative fiction...",
		DirectorName:     "Darren Aronofsky",
		DirectorBio:      "Darren Aronofsky is an American filmmaker...",
		Actors:           []string{"Hugh Jackman", "Rachel Weisz"},
		ImagePath:        "...",
		Featured:         false,
	},
	{
		Title:            "The Brutalist",
		Description:      "...",
		GenreName:        "Drama",
		GenreDescription: "A drama is a genre of narrative fiction...",
		DirectorName:     "Brady Corbet",
		DirectorBio:      "Brady Corbet is a director and actor...",
		Actors:           []string{"Joel Edgerton", "Marion Cotillard"},
		ImagePath:        "...",
		Featured:         false,
	},
	{
		Title:            "A Real Pain",
		Description:      "...",
		GenreName:        "Drama",
		GenreDescription: "A drama is a genre of narrative fiction...",
		DirectorName:     "Jesse Eisenberg",
		DirectorBio:      "Jesse Eisenberg is a movie actor...",
		Actors:           []string{"Jesse Eisenberg", "Kieran Culkin"},
		ImagePath:        "...",
		Featured:         false,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gdb := infradb.OpenDB(&cfg.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var count int64
	if err := gdb.WithContext(ctx).Model(&entity.Movie{}).Count(&count).Error; err != nil {
		log.Fatal("failed to count movies:", err)
	}
	if count > 0 {
		log.Printf("catalog already has %d movies, nothing to do", count)
		return
	}

	if err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&seedMovies).Error
	}); err != nil {
		log.Fatal("failed to seed movies:", err)
	}
	log.Printf("seeded %d movies", len(seedMovies))
}
