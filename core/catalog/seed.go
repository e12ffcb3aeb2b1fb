package catalog

func coords(lat, lng float64) *Coordinates {
	return &Coordinates{Lat: lat, Lng: lng}
}

// SeedProperties returns the offline listing dataset served in mock mode
// and used as the fallback snapshot when the live API is unreachable.
func SeedProperties() []Property {
	return []Property{
		{
			ID:        "1",
			Title:     "Premium Virtual Office - Connaught Place",
			Slug:      "premium-virtual-office-connaught-place",
			Category:  "virtual-office",
			City:      "delhi",
			Address:   "Connaught Place, New Delhi, Delhi 110001",
			Price:     2999,
			PriceType: PriceMonthly,
			Amenities: []string{"GST Registration", "Business Address", "Mail Handling", "Phone Support", "Meeting Room Access"},
			Photos: []string{
				"https://images.unsplash.com/photo-1497366216548-37526070297c?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1497366811353-6870744d04b2?w=800&h=600&fit=crop",
				"https://picsum.photos/800/600?random=1",
			},
			Description:  "Premium virtual office solution in the heart of Delhi with GST registration, business address, and comprehensive support services. Perfect for startups and established businesses looking for a prestigious address.",
			Featured:     true,
			Availability: Available,
			Rating:       4.8,
			Reviews:      156,
			Coordinates:  coords(28.6304, 77.2177),
		},
		{
			ID:        "2",
			Title:     "Modern Coworking Space - Bandra",
			Slug:      "modern-coworking-space-bandra",
			Category:  "coworking",
			City:      "mumbai",
			Address:   "Bandra West, Mumbai, Maharashtra 400050",
			Price:     899,
			PriceType: PriceDaily,
			Amenities: []string{"High-Speed WiFi", "Printing Services", "Coffee", "Meeting Rooms", "24/7 Access"},
			Photos: []string{
				"https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=800&h=600&fit=crop",
				"https://picsum.photos/800/600?random=2",
			},
			Description:  "Vibrant coworking space in Bandra with modern amenities and a creative community of professionals. Features flexible seating, meeting rooms, and networking opportunities.",
			Featured:     true,
			Availability: Available,
			Rating:       4.6,
			Reviews:      243,
			Coordinates:  coords(19.0596, 72.8295),
		},
		{
			ID:        "3",
			Title:     "Executive Private Office - Koramangala",
			Slug:      "executive-private-office-koramangala",
			Category:  "private-office",
			City:      "bangalore",
			Address:   "Koramangala, Bangalore, Karnataka 560095",
			Price:     25000,
			PriceType: PriceMonthly,
			Amenities: []string{"Dedicated Desk", "Storage Cabinet", "High-Speed Internet", "Parking", "Reception Services"},
			Photos: []string{
				"https://images.unsplash.com/photo-1541746972996-4e0b0f93e586?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1524758631624-e2822e304c36?w=800&h=600&fit=crop",
				"https://picsum.photos/800/600?random=3",
			},
			Description:  "Fully furnished private office in Bangalore's tech hub with dedicated amenities and professional environment. Ideal for teams of 4-8 people with privacy and flexibility.",
			Availability: Available,
			Rating:       4.7,
			Reviews:      89,
			Coordinates:  coords(12.9352, 77.6245),
		},
		{
			ID:        "4",
			Title:     "Conference Room - Cyber City",
			Slug:      "conference-room-cyber-city",
			Category:  "meeting-room",
			City:      "gurgaon",
			Address:   "Cyber City, Gurgaon, Haryana 122002",
			Price:     1200,
			PriceType: PriceHourly,
			Amenities: []string{"Projector", "Whiteboard", "Video Conferencing", "Catering Service", "AC"},
			Photos: []string{
				"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1553484771-371a605b060b?w=800&h=600&fit=crop",
				"https://picsum.photos/800/600?random=4",
			},
			Description:  "Professional conference room equipped with latest technology for successful business meetings. Accommodates up to 12 people with state-of-the-art AV equipment.",
			Availability: Available,
			Rating:       4.5,
			Reviews:      67,
			Coordinates:  coords(28.4595, 77.0266),
		},
		{
			ID:        "5",
			Title:     "Luxury Coworking Hub - Powai",
			Slug:      "luxury-coworking-hub-powai",
			Category:  "coworking",
			City:      "mumbai",
			Address:   "Powai, Mumbai, Maharashtra 400076",
			Price:     1299,
			PriceType: PriceDaily,
			Amenities: []string{"Premium WiFi", "24/7 Access", "Game Zone", "Rooftop Cafe", "Parking", "Gym Access"},
			Photos: []string{
				"https://images.unsplash.com/photo-1556761175-4b46a572b786?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1559223607-b4d0555ae227?w=800&h=600&fit=crop",
				"https://picsum.photos/800/600?random=5",
			},
			Description:  "Premium coworking space with luxury amenities in Mumbai's IT hub. Features modern design, recreational facilities, and excellent networking opportunities.",
			Featured:     true,
			Availability: Available,
			Rating:       4.9,
			Reviews:      312,
			Coordinates:  coords(19.1176, 72.9060),
		},
		{
			ID:        "6",
			Title:     "Creative Studio Space - Indiranagar",
			Slug:      "creative-studio-space-indiranagar",
			Category:  "private-office",
			City:      "bangalore",
			Address:   "Indiranagar, Bangalore, Karnataka 560038",
			Price:     18000,
			PriceType: PriceMonthly,
			Amenities: []string{"Natural Light", "High Ceilings", "Creative Setup", "Meeting Room", "Terrace Access"},
			Photos: []string{
				"https://images.unsplash.com/photo-1571624436279-b272aff752b5?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&h=600&fit=crop",
				"https://picsum.photos/800/600?random=6",
			},
			Description:  "Inspiring private office space perfect for creative teams. Features abundant natural light, flexible layout, and artistic environment in trendy Indiranagar.",
			Featured:     true,
			Availability: Available,
			Rating:       4.6,
			Reviews:      127,
			Coordinates:  coords(12.9719, 77.6412),
		},
		{
			ID:        "7",
			Title:     "Tech Startup Office - Sector 44",
			Slug:      "tech-startup-office-sector-44",
			Category:  "private-office",
			City:      "gurgaon",
			Address:   "Sector 44, Gurgaon, Haryana 122003",
			Price:     35000,
			PriceType: PriceMonthly,
			Amenities: []string{"IT Infrastructure", "Server Room", "Secure Access", "Backup Power", "Fiber Internet"},
			Photos: []string{
				"https://images.unsplash.com/photo-1552581234-26160f608093?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=800&h=600&fit=crop",
				"https://picsum.photos/800/600?random=7",
			},
			Description:  "State-of-the-art private office designed for tech startups. Features dedicated IT infrastructure, server facilities, and high-security measures.",
			Availability: Available,
			Rating:       4.8,
			Reviews:      94,
			Coordinates:  coords(28.4486, 77.0647),
		},
		{
			ID:        "8",
			Title:     "Premium Meeting Suite - Vasant Kunj",
			Slug:      "premium-meeting-suite-vasant-kunj",
			Category:  "meeting-room",
			City:      "delhi",
			Address:   "Vasant Kunj, New Delhi, Delhi 110070",
			Price:     1800,
			PriceType: PriceHourly,
			Amenities: []string{"Executive Setup", "Premium AV", "Catering", "Valet Parking", "Concierge"},
			Photos: []string{
				"https://images.unsplash.com/photo-1565843708714-887b18ddedb6?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1571717065521-874adb1c4ecf?w=800&h=600&fit=crop",
				"https://picsum.photos/800/600?random=8",
			},
			Description:  "Luxurious meeting suite for executive presentations and high-profile client meetings. Premium amenities and professional service included.",
			Availability: Available,
			Rating:       4.9,
			Reviews:      73,
			Coordinates:  coords(28.5355, 77.1580),
		},
	}
}

// SeedCategories returns the built-in category taxonomy.
func SeedCategories() []Category {
	return []Category{
		{ID: "1", Name: "Virtual Office", Slug: "virtual-office", Description: "Professional business address with GST registration", Icon: "🏢", Featured: true},
		{ID: "2", Name: "Coworking", Slug: "coworking", Description: "Shared workspace with flexible seating", Icon: "👥", Featured: true},
		{ID: "3", Name: "Private Office", Slug: "private-office", Description: "Dedicated private workspace", Icon: "🏠", Featured: true},
		{ID: "4", Name: "Meeting Room", Slug: "meeting-room", Description: "Professional meeting and conference rooms", Icon: "🤝", Featured: true},
	}
}

// SeedCities returns the built-in city taxonomy.
func SeedCities() []City {
	return []City{
		{ID: "1", Name: "Delhi", Slug: "delhi", State: "Delhi", Country: "India", Featured: true, Coordinates: Coordinates{Lat: 28.6139, Lng: 77.2090}},
		{ID: "2", Name: "Mumbai", Slug: "mumbai", State: "Maharashtra", Country: "India", Featured: true, Coordinates: Coordinates{Lat: 19.0760, Lng: 72.8777}},
		{ID: "3", Name: "Bangalore", Slug: "bangalore", State: "Karnataka", Country: "India", Featured: true, Coordinates: Coordinates{Lat: 12.9716, Lng: 77.5946}},
		{ID: "4", Name: "Gurgaon", Slug: "gurgaon", State: "Haryana", Country: "India", Featured: true, Coordinates: Coordinates{Lat: 28.4595, Lng: 77.0266}},
	}
}
