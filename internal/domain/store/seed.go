package store

import (
	"strconv"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func generatedImages(slug string, count int) []string {
	images := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		images = append(images, "/assets/generated/"+slug+"-"+strconv.Itoa(i)+".dim_256x256.png")
	}

	return images
}

// SeedProducts returns the fixed catalog every session starts with.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:          "1",
			Name:        "Cricket Bat",
			Price:       decimal.RequireFromString("89.99"),
			Description: "Professional grade cricket bat for serious players",
			Images:      generatedImages("cricket-bat", 3),
		},
		{
			ID:          "2",
			Name:        "Football",
			Price:       decimal.RequireFromString("34.99"),
			Description: "Official size and weight football for matches",
			Images:      generatedImages("football", 2),
		},
		{
			ID:          "3",
			Name:        "Running Shoes",
			Price:       decimal.RequireFromString("129.99"),
			Description: "Lightweight running shoes with superior cushioning",
			Images:      generatedImages("running-shoes", 3),
		},
		{
			ID:          "4",
			Name:        "Tennis Racket",
			Price:       decimal.RequireFromString("159.99"),
			Description: "Carbon fiber tennis racket for power and control",
			Images:      generatedImages("tennis-racket", 2),
		},
		{
			ID:          "5",
			Name:        "Sports Jersey",
			Price:       decimal.RequireFromString("49.99"),
			Description: "Breathable sports jersey with moisture-wicking fabric",
			Images:      generatedImages("sports-jersey", 2),
		},
		{
			ID:          "6",
			Name:        "Jacket",
			Price:       decimal.RequireFromString("79.99"),
			Description: "Warm and comfortable sports jacket with wind-resistant fabric",
			Images:      generatedImages("jacket", 2),
		},
		{
			ID:          "7",
			Name:        "Half Pant",
			Price:       decimal.RequireFromString("29.99"),
			Description: "Lightweight half pants perfect for training and casual wear",
			Images:      generatedImages("half-pant", 2),
		},
		{
			ID:          "8",
			Name:        "Full Pant",
			Price:       decimal.RequireFromString("44.99"),
			Description: "Comfortable full-length sports pants with elastic waistband",
			Images:      generatedImages("full-pant", 2),
		},
		{
			ID:          "9",
			Name:        "Football T-Shirt",
			Price:       decimal.RequireFromString("39.99"),
			Description: "Premium football t-shirt with breathable mesh panels",
			Images:      generatedImages("football-tshirt", 2),
		},
	}
}
