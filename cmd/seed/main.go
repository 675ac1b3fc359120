// Seeds the database with sample projects, apartments and images.
// Skips when projects already exist, so it is safe to run on every start.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"aptlist/database"
	"aptlist/models"

	"github.com/joho/godotenv"
)

type seedApartment struct {
	apartment models.NewApartment
	images    []string
}

var projects = []models.Project{
	{Name: "Mountain View Ras El Hekma", Location: "North Coast"},
	{Name: "Marassi", Location: "Sidi Abd ElRahman"},
	{Name: "Sodic EAST", Location: "New Cairo"},
	{Name: "Mivida", Location: "5th Settlement"},
	{Name: "The Waterway", Location: "New Cairo"},
}

var apartments = []seedApartment{
	{
		apartment: models.NewApartment{Name: "Cozy Apartment", UnitNumber: "A101", Price: 12000000, Bedrooms: 2, Bathrooms: 1, Area: 85},
		images: []string{
			"https://i.pinimg.com/1200x/85/3e/84/853e843ec5c068fb3678b1e00f2942f6.jpg",
			"https://i.pinimg.com/1200x/79/79/78/797978be8b13d67ebd16dac78552b39f.jpg",
		},
	},
	{
		apartment: models.NewApartment{Name: "Sea View Apartment", UnitNumber: "B202", Price: 25000000, Bedrooms: 3, Bathrooms: 2, Area: 150},
		images: []string{
			"https://i.pinimg.com/1200x/f6/e2/86/f6e2863c59f7089b3415ebc1cb3e170a.jpg",
		},
	},
	{
		apartment: models.NewApartment{Name: "Modern Studio", UnitNumber: "C303", Price: 18000000, Bedrooms: 1, Bathrooms: 1, Area: 60},
		images: []string{
			"https://i.pinimg.com/1200x/d6/a6/85/d6a685992619668e216e616646ffd7e2.jpg",
		},
	},
	{
		apartment: models.NewApartment{Name: "Luxury Villa", UnitNumber: "D404", Price: 50000000, Bedrooms: 4, Bathrooms: 3, Area: 300},
		images: []string{
			"https://i.pinimg.com/1200x/3f/34/2a/3f342a3254ed26d8681774b424dedf0b.jpg",
			"https://i.pinimg.com/736x/86/dd/85/86dd85f606d59b007b87854bb31fa19a.jpg",
			"https://i.pinimg.com/736x/53/00/e2/5300e20c0a48c9c80bdcc83346c91872.jpg",
		},
	},
	{
		apartment: models.NewApartment{Name: "Family Apartment", UnitNumber: "E505", Price: 22000000, Bedrooms: 3, Bathrooms: 2, Area: 130},
		images: []string{
			"https://i.pinimg.com/1200x/12/57/9e/12579e752af87222552fcbe1ebe1ae36.jpg",
			"https://i.pinimg.com/1200x/58/54/d9/5854d955a4cf0507c0f7c6436be33c15.jpg",
			"https://i.pinimg.com/1200x/fd/e2/25/fde225b5f0daf2a0e3abd2547275cf17.jpg",
		},
	},
}

func main() {
	godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	existing, err := db.CountProjects(ctx)
	if err != nil {
		log.Fatal("Failed to count projects:", err)
	}
	if existing > 0 {
		log.Println("Database already seeded. Skipping.")
		return
	}

	for i, project := range projects {
		created, err := db.CreateProject(ctx, project.Name, project.Location)
		if err != nil {
			log.Fatalf("Failed to seed project %q: %v", project.Name, err)
		}

		// One apartment per project, in order.
		seed := apartments[i]
		seed.apartment.ProjectID = created.ID

		apartment, err := db.CreateApartment(ctx, seed.apartment)
		if err != nil {
			log.Fatalf("Failed to seed apartment %q: %v", seed.apartment.Name, err)
		}

		if err := db.InsertImagesBatch(ctx, apartment.ID, seed.images); err != nil {
			log.Fatalf("Failed to seed images for %q: %v", seed.apartment.Name, err)
		}
	}

	log.Println("Seed completed")
}
