package main

import (
	"time"

	"release-auction/internal/models"
	"release-auction/internal/repository"
)

// prepopulateListings adds sample users and listings to the sandbox store.
// Bid as a seeded user with --token alice-token and friends.
func prepopulateListings(repo *repository.MemoryRepo, now time.Time) {
	users := []models.User{
		{ID: "1", Name: "Alice Moreno", Email: "alice@example.com", Token: "alice-token"},
		{ID: "2", Name: "Bashir Okafor", Email: "bashir@example.com", Token: "bashir-token"},
		{ID: "3", Name: "Chen Wei", Email: "chen@example.com", Token: "chen-token"},
	}
	for _, u := range users {
		repo.AddUser(u)
	}

	day := 24 * time.Hour
	leaseStart := now.Truncate(day).Add(30 * day)
	bidder := func(u models.User) *models.Bidder { return &models.Bidder{Name: u.Name, Email: u.Email} }

	listings := []models.Property{
		{
			ID:               "101",
			UserID:           "3",
			Title:            "Sunny loft near Piedmont Park",
			FormattedAddress: "400 10th St NE, Atlanta, GA 30309",
			MinPrice:         1000,
			StartDate:        models.NewTimestamp(leaseStart),
			EndDate:          models.NewTimestamp(leaseStart.Add(180 * day)),
			AuctionEndDate:   models.TimestampPtr(now.Add(time.Hour)),
			Images:           []models.Image{{ID: "1", ImageURL: "https://images.example.com/101/living.jpg"}},
			Amenities:        []string{"Wifi", "Washer", "Air conditioning"},
		},
		{
			ID:               "102",
			UserID:           "3",
			Title:            "Two-bedroom in Midtown",
			FormattedAddress: "1100 Peachtree St NE, Atlanta, GA 30309",
			MinPrice:         1800,
			StartDate:        models.NewTimestamp(leaseStart),
			EndDate:          models.NewTimestamp(leaseStart.Add(365 * day)),
			AuctionEndDate:   models.TimestampPtr(now.Add(3 * day)),
			Amenities:        []string{"Parking", "Gym"},
			Bids: []models.Bid{
				{
					ID: "b-1021", Amount: 1850, Bidder: bidder(users[0]), Status: models.BidStatusActive,
					StartDate: models.NewTimestamp(leaseStart), EndDate: models.NewTimestamp(leaseStart.Add(365 * day)),
					CreatedAt: models.NewTimestamp(now.Add(-5 * time.Hour)),
				},
				{
					ID: "b-1022", Amount: 1950, Bidder: bidder(users[1]), Status: models.BidStatusActive,
					StartDate: models.NewTimestamp(leaseStart), EndDate: models.NewTimestamp(leaseStart.Add(180 * day)),
					CreatedAt: models.NewTimestamp(now.Add(-2 * time.Hour)),
				},
			},
		},
		{
			ID:               "103",
			UserID:           "3",
			Title:            "Garden studio in Inman Park",
			FormattedAddress: "850 Euclid Ave NE, Atlanta, GA 30307",
			MinPrice:         900,
			StartDate:        models.NewTimestamp(leaseStart),
			EndDate:          models.NewTimestamp(leaseStart.Add(90 * day)),
			AuctionEndDate:   models.TimestampPtr(now.Add(-day)),
			Bids: []models.Bid{
				{
					ID: "b-1031", Amount: 950, Bidder: bidder(users[0]), Status: models.BidStatusLost,
					StartDate: models.NewTimestamp(leaseStart), EndDate: models.NewTimestamp(leaseStart.Add(90 * day)),
					CreatedAt: models.NewTimestamp(now.Add(-3 * day)),
				},
				{
					ID: "b-1032", Amount: 1010, Status: models.BidStatusWon,
					StartDate: models.NewTimestamp(leaseStart), EndDate: models.NewTimestamp(leaseStart.Add(90 * day)),
					CreatedAt: models.NewTimestamp(now.Add(-2 * day)),
				},
			},
		},
		{
			ID:               "104",
			UserID:           "2",
			Title:            "Furnished room, fixed price",
			FormattedAddress: "55 Trinity Ave SW, Atlanta, GA 30303",
			MinPrice:         700,
			StartDate:        models.NewTimestamp(leaseStart),
			EndDate:          models.NewTimestamp(leaseStart.Add(60 * day)),
		},
	}
	for _, p := range listings {
		repo.AddProperty(p)
	}
}
