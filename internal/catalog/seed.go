package catalog

import "experience-booking/internal/models"

var seedExperiences = []models.Experience{
	{
		ID:          "1",
		Title:       "Kayaking",
		Location:    "Udupi",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
		LongDescription: "Curated small-group experience. Certified guide. Safety first with gear included. " +
			"Helmet and Life jackets along with an expert will accompany in kayaking.",
		Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
		Price:    999,
		Duration: "2 hours",
		MinAge:   10,
		Availability: []models.AvailableSlot{
			{Date: "2025-10-22", Times: []string{"07:00 am", "09:00 am", "11:00 am"}},
			{Date: "2025-10-23", Times: []string{"07:00 am", "09:00 am", "11:00 am"}},
			{Date: "2025-10-24", Times: []string{"07:00 am", "09:00 am", "11:00 am"}},
			{Date: "2025-10-25", Times: []string{"07:00 am", "09:00 am", "11:00 am"}},
			{Date: "2025-10-26", Times: []string{"07:00 am", "09:00 am", "11:00 am"}},
		},
	},
	{
		ID:              "2",
		Title:           "Nandi Hills Sunrise",
		Location:        "Bangalore",
		Description:     "Curated small-group experience. Certified guide. Safety first with gear included.",
		LongDescription: "Experience the breathtaking sunrise at Nandi Hills with a certified guide. Perfect for photography and nature lovers.",
		Image:           "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=800&h=600&fit=crop",
		Price:           899,
		Duration:        "3 hours",
		MinAge:          8,
		Availability: []models.AvailableSlot{
			{Date: "2025-10-22", Times: []string{"05:00 am", "06:00 am"}},
			{Date: "2025-10-23", Times: []string{"05:00 am", "06:00 am"}},
			{Date: "2025-10-24", Times: []string{"05:00 am", "06:00 am"}},
			{Date: "2025-10-25", Times: []string{"05:00 am", "06:00 am"}},
		},
	},
	{
		ID:              "3",
		Title:           "Coffee Trail",
		Location:        "Coorg",
		Description:     "Curated small-group experience. Certified guide. Safety first with gear included.",
		LongDescription: "Explore the lush coffee plantations of Coorg with an expert guide. Learn about coffee cultivation and enjoy fresh brew.",
		Image:           "https://images.unsplash.com/photo-1516426122078-8023e06b2a91?w=800&h=600&fit=crop",
		Price:           1299,
		Duration:        "4 hours",
		MinAge:          12,
		Availability: []models.AvailableSlot{
			{Date: "2025-10-22", Times: []string{"09:00 am", "01:00 pm", "03:00 pm"}},
			{Date: "2025-10-23", Times: []string{"09:00 am", "01:00 pm", "03:00 pm"}},
			{Date: "2025-10-24", Times: []string{"09:00 am", "01:00 pm", "03:00 pm"}},
		},
	},
	{
		ID:              "4",
		Title:           "Boat Cruise",
		Location:        "Sundarbans",
		Description:     "Curated small-group experience. Certified guide. Safety first with gear included.",
		LongDescription: "Explore the mangrove forests and spot wildlife on a thrilling boat cruise through the Sundarbans.",
		Image:           "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&h=600&fit=crop",
		Price:           999,
		Duration:        "2.5 hours",
		MinAge:          5,
		Availability: []models.AvailableSlot{
			{Date: "2025-10-22", Times: []string{"08:00 am", "02:00 pm", "04:00 pm"}},
			{Date: "2025-10-23", Times: []string{"08:00 am", "02:00 pm", "04:00 pm"}},
			{Date: "2025-10-24", Times: []string{"08:00 am", "02:00 pm", "04:00 pm"}},
		},
	},
	{
		ID:              "5",
		Title:           "Bungee Jumping",
		Location:        "Manali",
		Description:     "Curated small-group experience. Certified guide. Safety first with gear included.",
		LongDescription: "Get your adrenaline rush with a thrilling bungee jump from a 120m high platform. All safety equipment provided.",
		Image:           "https://images.unsplash.com/photo-1529407828158-c3211de63dd8?w=800&h=600&fit=crop",
		Price:           1999,
		Duration:        "1 hour",
		MinAge:          18,
		Availability: []models.AvailableSlot{
			{Date: "2025-10-22", Times: []string{"09:00 am", "11:00 am", "02:00 pm"}},
			{Date: "2025-10-23", Times: []string{"09:00 am", "11:00 am", "02:00 pm"}},
			{Date: "2025-10-24", Times: []string{"09:00 am", "11:00 am", "02:00 pm"}},
		},
	},
	{
		ID:              "6",
		Title:           "Kayaking",
		Location:        "Udupi, Karnataka",
		Description:     "Curated small-group experience. Certified guide. Safety first with gear included.",
		LongDescription: "Curated small-group experience. Certified guide. Safety first with gear included.",
		Image:           "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=800&h=600&fit=crop",
		Price:           999,
		Duration:        "2 hours",
		MinAge:          10,
		Availability: []models.AvailableSlot{
			{Date: "2025-10-22", Times: []string{"07:00 am", "09:00 am"}},
			{Date: "2025-10-23", Times: []string{"07:00 am", "09:00 am"}},
		},
	},
	{
		ID:              "7",
		Title:           "Volcano Trekking",
		Location:        "Hawaii",
		Description:     "Curated small-group experience. Certified guide. Safety first with gear included.",
		LongDescription: "Trek to the top of an active volcano and witness the power of nature up close.",
		Image:           "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
		Price:           2499,
		Duration:        "5 hours",
		MinAge:          16,
		Availability: []models.AvailableSlot{
			{Date: "2025-10-22", Times: []string{"06:00 am", "08:00 am"}},
			{Date: "2025-10-23", Times: []string{"06:00 am", "08:00 am"}},
		},
	},
	{
		ID:              "8",
		Title:           "Forest Hiking",
		Location:        "Coorg",
		Description:     "Curated small-group experience. Certified guide. Safety first with gear included.",
		LongDescription: "Explore the pristine forests of Coorg with an experienced guide. Spot rare wildlife and enjoy nature at its best.",
		Image:           "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=800&h=600&fit=crop",
		Price:           799,
		Duration:        "3 hours",
		MinAge:          10,
		Availability: []models.AvailableSlot{
			{Date: "2025-10-22", Times: []string{"07:00 am", "09:00 am"}},
			{Date: "2025-10-23", Times: []string{"07:00 am", "09:00 am"}},
			{Date: "2025-10-24", Times: []string{"07:00 am", "09:00 am"}},
		},
	},
}
