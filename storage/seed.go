package storage

import "travel-webapp/model"

func strp(s string) *string {
	return &s
}

// seed loads the fixture catalogs: 8 hotels (4 featured), 6 flights
// (2 domestic, 4 international) and 6 transport options. Seeding is
// deterministic and part of the storage contract.
func (s *MemStorage) seed() {
	hotelData := []model.Hotel{
		{
			Name:        "Victoria Falls Hotel",
			Location:    "Victoria Falls, Zimbabwe",
			City:        "Victoria Falls",
			Description: "Luxury hotel with spectacular views of Victoria Falls",
			Price:       "180",
			Rating:      "4.8",
			ImageUrl:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Amenities:   []string{"Free WiFi", "Pool", "Restaurant", "Spa", "Room Service"},
			Featured:    true,
		},
		{
			Name:        "Harare Rainbow Hotel",
			Location:    "Harare, Zimbabwe",
			City:        "Harare",
			Description: "Modern business hotel in the heart of Harare",
			Price:       "120",
			Rating:      "4.3",
			ImageUrl:    "https://images.unsplash.com/photo-1516026672322-bc52d61a55d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Amenities:   []string{"Free WiFi", "Business Center", "Restaurant", "Gym"},
			Featured:    true,
		},
		{
			Name:        "Bulawayo Lodge",
			Location:    "Bulawayo, Zimbabwe",
			City:        "Bulawayo",
			Description: "Charming lodge with traditional Zimbabwean hospitality",
			Price:       "95",
			Rating:      "4.1",
			ImageUrl:    "https://images.unsplash.com/photo-1571896349842-33c89424de2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Amenities:   []string{"Free WiFi", "Restaurant", "Garden", "Parking"},
			Featured:    true,
		},
		{
			Name:        "Harare Luxury Suites",
			Location:    "Harare, Zimbabwe",
			City:        "Harare",
			Description: "Executive suites for business travelers",
			Price:       "150",
			Rating:      "4.5",
			ImageUrl:    "https://images.unsplash.com/photo-1590490360182-c33d57733427?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Amenities:   []string{"Free WiFi", "Concierge", "Gym", "Restaurant"},
			Featured:    false,
		},
		{
			Name:        "Victoria Falls Safari Lodge",
			Location:    "Victoria Falls, Zimbabwe",
			City:        "Victoria Falls",
			Description: "Safari-themed lodge near the falls",
			Price:       "200",
			Rating:      "4.7",
			ImageUrl:    "https://images.unsplash.com/photo-1547471080-7cc2caa01a7e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Amenities:   []string{"Free WiFi", "Pool", "Safari Tours", "Restaurant"},
			Featured:    false,
		},
		{
			Name:        "Hwange Safari Lodge",
			Location:    "Hwange National Park, Zimbabwe",
			City:        "Hwange",
			Description: "Luxury safari lodge in Zimbabwe's premier wildlife destination",
			Price:       "250",
			Rating:      "4.9",
			ImageUrl:    "https://images.unsplash.com/photo-1549366021-9f761d040a94?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Amenities:   []string{"Free WiFi", "Game Drives", "Restaurant", "Spa", "Pool"},
			Featured:    true,
		},
		{
			Name:        "Matobo Hills Lodge",
			Location:    "Matobo National Park, Zimbabwe",
			City:        "Matobo",
			Description: "Boutique lodge among ancient granite formations",
			Price:       "180",
			Rating:      "4.6",
			ImageUrl:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Amenities:   []string{"Free WiFi", "Rock Art Tours", "Restaurant", "Pool"},
			Featured:    false,
		},
		{
			Name:        "Great Zimbabwe Hotel",
			Location:    "Masvingo, Zimbabwe",
			City:        "Masvingo",
			Description: "Historic hotel near the Great Zimbabwe Ruins",
			Price:       "110",
			Rating:      "4.2",
			ImageUrl:    "https://images.unsplash.com/photo-1571896349842-33c89424de2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Amenities:   []string{"Free WiFi", "Heritage Tours", "Restaurant", "Garden"},
			Featured:    false,
		},
	}

	for _, hotel := range hotelData {
		s.CreateHotel(hotel)
	}

	flightData := []model.Flight{
		// Domestic flights
		{
			Airline:             "Air Zimbabwe",
			From:                "Harare",
			To:                  "Victoria Falls",
			FromCode:            "HRE",
			ToCode:              "VFA",
			Price:               "89",
			Duration:            "1h 30m",
			Frequency:           "Daily flights",
			DepartureTime:       "08:00",
			ArrivalTime:         "09:30",
			FlightType:          "domestic",
			ReturnPrice:         strp("89"),
			ReturnDuration:      strp("1h 30m"),
			ReturnDepartureTime: strp("16:00"),
			ReturnArrivalTime:   strp("17:30"),
			Country:             "Zimbabwe",
			Timezone:            "Africa/Harare",
		},
		{
			Airline:             "Air Zimbabwe",
			From:                "Harare",
			To:                  "Bulawayo",
			FromCode:            "HRE",
			ToCode:              "BUQ",
			Price:               "65",
			Duration:            "1h 15m",
			Frequency:           "Daily flights",
			DepartureTime:       "10:00",
			ArrivalTime:         "11:15",
			FlightType:          "domestic",
			ReturnPrice:         strp("65"),
			ReturnDuration:      strp("1h 15m"),
			ReturnDepartureTime: strp("14:00"),
			ReturnArrivalTime:   strp("15:15"),
			Country:             "Zimbabwe",
			Timezone:            "Africa/Harare",
		},
		// International flights
		{
			Airline:             "South African Airways",
			From:                "Harare",
			To:                  "Johannesburg",
			FromCode:            "HRE",
			ToCode:              "JNB",
			Price:               "245",
			Duration:            "2h 10m",
			Frequency:           "3 flights daily",
			DepartureTime:       "07:30",
			ArrivalTime:         "09:40",
			FlightType:          "international",
			ReturnPrice:         strp("245"),
			ReturnDuration:      strp("2h 10m"),
			ReturnDepartureTime: strp("18:30"),
			ReturnArrivalTime:   strp("20:40"),
			Country:             "South Africa",
			Timezone:            "Africa/Johannesburg",
		},
		{
			Airline:             "Emirates",
			From:                "Harare",
			To:                  "Dubai",
			FromCode:            "HRE",
			ToCode:              "DXB",
			Price:               "685",
			Duration:            "8h 45m",
			Frequency:           "Daily flights",
			DepartureTime:       "23:50",
			ArrivalTime:         "08:35",
			FlightType:          "international",
			ReturnPrice:         strp("685"),
			ReturnDuration:      strp("8h 30m"),
			ReturnDepartureTime: strp("10:20"),
			ReturnArrivalTime:   strp("18:50"),
			Country:             "United Arab Emirates",
			Timezone:            "Asia/Dubai",
		},
		{
			Airline:             "British Airways",
			From:                "Harare",
			To:                  "London",
			FromCode:            "HRE",
			ToCode:              "LHR",
			Price:               "890",
			Duration:            "11h 30m",
			Frequency:           "4 flights weekly",
			DepartureTime:       "21:45",
			ArrivalTime:         "09:15",
			FlightType:          "international",
			ReturnPrice:         strp("890"),
			ReturnDuration:      strp("11h 45m"),
			ReturnDepartureTime: strp("13:30"),
			ReturnArrivalTime:   strp("01:15"),
			Country:             "United Kingdom",
			Timezone:            "Europe/London",
		},
		{
			Airline:             "Kenya Airways",
			From:                "Harare",
			To:                  "Nairobi",
			FromCode:            "HRE",
			ToCode:              "NBO",
			Price:               "195",
			Duration:            "3h 25m",
			Frequency:           "Daily flights",
			DepartureTime:       "14:30",
			ArrivalTime:         "17:55",
			FlightType:          "international",
			ReturnPrice:         strp("195"),
			ReturnDuration:      strp("3h 25m"),
			ReturnDepartureTime: strp("19:30"),
			ReturnArrivalTime:   strp("22:55"),
			Country:             "Kenya",
			Timezone:            "Africa/Nairobi",
		},
	}

	for _, flight := range flightData {
		s.CreateFlight(flight)
	}

	transportData := []model.Transport{
		{
			Name:        "Mercedes-Benz S-Class",
			Type:        "luxury-sedan",
			Description: "Ultimate luxury sedan with premium amenities and professional chauffeur",
			Price:       "75",
			Currency:    "USD",
			ImageUrl:    "https://images.unsplash.com/photo-1563720223185-11003d516935?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Features:    []string{"Professional Chauffeur", "Premium Leather", "Climate Control", "WiFi", "Mini Bar", "Massage Seats"},
			Capacity:    4,
		},
		{
			Name:        "Mercedes-Benz GLE SUV",
			Type:        "luxury-suv",
			Description: "Spacious luxury SUV perfect for families and groups",
			Price:       "95",
			Currency:    "USD",
			ImageUrl:    "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Features:    []string{"Professional Driver", "Premium Interior", "Panoramic Roof", "Premium Sound", "Tinted Windows", "USB Charging"},
			Capacity:    7,
		},
		{
			Name:        "Mercedes-Benz V-Class",
			Type:        "executive-van",
			Description: "Executive van with conference facilities for business travel",
			Price:       "120",
			Currency:    "USD",
			ImageUrl:    "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Features:    []string{"Professional Driver", "Conference Setup", "WiFi", "Refreshments", "Meeting Table", "Power Outlets"},
			Capacity:    12,
		},
		{
			Name:        "BMW 7 Series",
			Type:        "luxury-sedan",
			Description: "Premium executive sedan with cutting-edge technology",
			Price:       "70",
			Currency:    "USD",
			ImageUrl:    "https://images.unsplash.com/photo-1617788138017-80ad40651399?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Features:    []string{"Professional Chauffeur", "Executive Lounge", "Advanced Tech", "Premium Audio", "Ambient Lighting"},
			Capacity:    4,
		},
		{
			Name:        "Range Rover Autobiography",
			Type:        "luxury-suv",
			Description: "British luxury SUV with unparalleled comfort and style",
			Price:       "110",
			Currency:    "USD",
			ImageUrl:    "https://images.unsplash.com/photo-1568605117036-5fe5e7bab0b7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Features:    []string{"Professional Driver", "Luxury Interior", "Off-Road Capability", "Premium Sound", "Rear Entertainment"},
			Capacity:    7,
		},
		{
			Name:        "Audi A8 Long",
			Type:        "luxury-sedan",
			Description: "Flagship luxury sedan with exceptional comfort and technology",
			Price:       "65",
			Currency:    "USD",
			ImageUrl:    "https://images.unsplash.com/photo-1549924231-f129b911e442?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Features:    []string{"Professional Driver", "Executive Package", "Matrix LED", "Bang & Olufsen Audio", "Massage Function"},
			Capacity:    4,
		},
	}

	for _, item := range transportData {
		s.CreateTransport(item)
	}
}
