package main

import (
	"context"
	"log"
	"time"

	"gin-jobs/internal/config"
	"gin-jobs/internal/database"
	"gin-jobs/internal/models"
	"gin-jobs/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	// Seed users, then jobs owned by the seeded employer
	userIDs := seedUsers(ctx, mongoDB.Database)
	seedJobs(ctx, mongoDB.Database, userIDs)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	// Clear existing users
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	// Hash passwords
	employerPassword, _ := auth.HashPassword("password123")
	seekerPassword, _ := auth.HashPassword("password456")
	adminPassword, _ := auth.HashPassword("password789")

	now := time.Now()

	users := []interface{}{
		models.User{
			Name:      "Harriet Employer",
			Email:     "harriet@knack.example.com",
			Role:      models.RoleEmployer,
			Password:  employerPassword,
			CreatedAt: now,
		},
		models.User{
			Name:      "Sam Seeker",
			Email:     "sam@example.com",
			Role:      models.RoleUser,
			Password:  seekerPassword,
			CreatedAt: now,
		},
		models.User{
			Name:      "Ada Admin",
			Email:     "admin@example.com",
			Role:      models.RoleAdmin,
			Password:  adminPassword,
			CreatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	// Convert to ObjectIDs
	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

func seedJobs(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) {
	collection := db.Collection("jobs")

	// Clear existing jobs
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear jobs: %v", err)
	}

	employer := userIDs[0]
	now := time.Now()

	jobs := []interface{}{
		models.Job{
			Title:       "Backend Engineer",
			Slug:        "backend-engineer",
			Description: "Design and run Go services backing our hiring marketplace. You will own APIs end to end, from schema to deployment.",
			Email:       "jobs@knack.example.com",
			Address:     "229 W 43rd St, New York, NY",
			Location: &models.GeoPoint{
				Type:        "Point",
				Coordinates: []float64{-73.9877, 40.7579},
				City:        "New York",
				State:       "NY",
				ZipCode:     "10036",
			},
			Company:      "Knack Ltd",
			Industry:     []string{"Information Technology"},
			JobType:      "permanent",
			MinEducation: "bachelors",
			Experiance:   "senior",
			Salary:       145000,
			Positions:    2,
			PostingDate:  now.Add(-72 * time.Hour),
			LastDate:     now.Add(30 * 24 * time.Hour),
			User:         employer,
		},
		models.Job{
			Title:       "Site Reliability Engineer",
			Slug:        "site-reliability-engineer",
			Description: "Keep the job platform fast and boring. Kubernetes, observability, and incident response for a Go and MongoDB stack.",
			Email:       "jobs@knack.example.com",
			Address:     "1 Market St, San Francisco, CA",
			Location: &models.GeoPoint{
				Type:        "Point",
				Coordinates: []float64{-122.3949, 37.7937},
				City:        "San Francisco",
				State:       "CA",
				ZipCode:     "94105",
			},
			Company:      "Knack Ltd",
			Industry:     []string{"Information Technology"},
			JobType:      "permanent",
			MinEducation: "bachelors",
			Experiance:   "mid",
			Salary:       160000,
			Positions:    1,
			PostingDate:  now.Add(-48 * time.Hour),
			LastDate:     now.Add(21 * 24 * time.Hour),
			User:         employer,
		},
		models.Job{
			Title:       "Data Engineering Intern",
			Slug:        "data-engineering-intern",
			Description: "Summer internship building reporting pipelines over our job posting data. Python, SQL, and a lot of curiosity.",
			Email:       "jobs@knack.example.com",
			Address:     "233 S Wacker Dr, Chicago, IL",
			Location: &models.GeoPoint{
				Type:        "Point",
				Coordinates: []float64{-87.6359, 41.8789},
				City:        "Chicago",
				State:       "IL",
				ZipCode:     "60606",
			},
			Company:      "Knack Ltd",
			Industry:     []string{"Information Technology", "Education"},
			JobType:      "internship",
			MinEducation: "bachelors",
			Experiance:   "junior",
			Salary:       42000,
			Positions:    4,
			PostingDate:  now.Add(-24 * time.Hour),
			LastDate:     now.Add(14 * 24 * time.Hour),
			User:         employer,
		},
	}

	result, err := collection.InsertMany(ctx, jobs)
	if err != nil {
		log.Fatalf("Failed to seed jobs: %v", err)
	}

	log.Printf("Seeded %d jobs", len(result.InsertedIDs))
}
