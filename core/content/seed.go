package content

// Offline datasets served in mock mode and as the last-resort fallback when
// the live API is unreachable.

// SeedBlogs returns the built-in article dataset.
func SeedBlogs() []Blog {
	return []Blog{
		{
			ID:           1,
			Title:        "Why Virtual Offices Make Sense for Indian Startups",
			Slug:         "why-virtual-offices-make-sense-for-indian-startups",
			Excerpt:      "GST registration, a prestigious address, and mail handling without the rent of a full office.",
			Content:      "A virtual office gives a young company everything a registered address requires while the team keeps working from wherever they already are. For most early-stage Indian startups the decisive feature is GST registration support, followed closely by mail handling and the occasional meeting room.",
			Author:       "Priya Sharma",
			Category:     "workspace-tips",
			Tags:         []string{"virtual-office", "gst", "startups"},
			ReadTime:     6,
			IsFeatured:   true,
			IsPublished:  true,
			PublishedAt:  "2025-04-02",
			DisplayOrder: 1,
		},
		{
			ID:           2,
			Title:        "Coworking Etiquette: A Field Guide",
			Slug:         "coworking-etiquette-a-field-guide",
			Excerpt:      "Shared desks work best when everyone follows a few unwritten rules. Here they are, written down.",
			Content:      "Take your calls in the phone booths. Book the meeting room before your client arrives, not after. The coffee machine queue is sacred. Shared workspaces run on small courtesies, and the communities that thrive are the ones where these habits become second nature.",
			Author:       "Arjun Mehta",
			Category:     "community",
			Tags:         []string{"coworking", "community"},
			ReadTime:     4,
			IsPublished:  true,
			PublishedAt:  "2025-05-18",
			DisplayOrder: 2,
		},
		{
			ID:           3,
			Title:        "Choosing Between Daily and Monthly Desk Plans",
			Slug:         "choosing-between-daily-and-monthly-desk-plans",
			Excerpt:      "A simple break-even rule for deciding when a monthly commitment beats pay-per-day.",
			Content:      "If you expect to use a desk more than twelve days a month, a monthly plan almost always wins on price. Below that threshold, daily passes keep you flexible. The rest is about lockers, printing credits, and how much you value a fixed seat.",
			Author:       "Priya Sharma",
			Category:     "workspace-tips",
			Tags:         []string{"pricing", "coworking"},
			ReadTime:     3,
			IsPublished:  false,
			DisplayOrder: 3,
		},
	}
}

// SeedNews returns the built-in news dataset.
func SeedNews() []News {
	return []News{
		{
			ID:           1,
			Title:        "Wishcowork Opens Flagship Hub in Powai",
			Slug:         "wishcowork-opens-flagship-hub-in-powai",
			Summary:      "Our largest location yet, with 400 seats across three floors.",
			Content:      "The new Powai hub brings our Mumbai footprint to four locations. The site includes a rooftop cafe, recording studio, and our first dedicated event floor.",
			Category:     "company",
			IsFeatured:   true,
			IsPublished:  true,
			PublishedAt:  "2025-06-10",
			DisplayOrder: 1,
		},
		{
			ID:           2,
			Title:        "Flexible Workspace Demand Up 30% in Tier-1 Cities",
			Slug:         "flexible-workspace-demand-up-30-percent-in-tier-1-cities",
			Summary:      "Industry report highlights sustained post-pandemic growth in managed offices.",
			Content:      "A new industry survey reports that demand for managed and flexible offices in Delhi, Mumbai, and Bangalore grew thirty percent year over year, driven by mid-size companies replacing long leases with managed space.",
			Source:       "Workspace India Report",
			SourceURL:    "https://example.com/workspace-india-report",
			Category:     "industry",
			IsPublished:  true,
			PublishedAt:  "2025-05-02",
			DisplayOrder: 2,
		},
	}
}

// SeedEvents returns the built-in events dataset.
func SeedEvents() []Event {
	return []Event{
		{
			ID:               1,
			Title:            "Founders Friday: Pitch Night",
			Description:      "Five startups, five minutes each, live feedback from a panel of investors.",
			EventDate:        "2026-09-26",
			EventTime:        "18:30",
			Location:         "Luxury Coworking Hub - Powai, Mumbai",
			Category:         "networking",
			IsFeatured:       true,
			IsActive:         true,
			DisplayOrder:     1,
			MaxAttendees:     120,
			CurrentAttendees: 85,
		},
		{
			ID:               2,
			Title:            "GST for Small Businesses Workshop",
			Description:      "A practical session on registration, filing, and the virtual office address route.",
			EventDate:        "2026-10-08",
			EventTime:        "11:00",
			Location:         "Premium Virtual Office - Connaught Place, Delhi",
			Category:         "workshop",
			IsActive:         true,
			DisplayOrder:     2,
			MaxAttendees:     40,
			CurrentAttendees: 12,
		},
		{
			ID:               3,
			Title:            "Open House 2025",
			Description:      "Tour our Bandra space, meet the community, day passes on the house.",
			EventDate:        "2025-11-15",
			EventTime:        "10:00",
			Location:         "Modern Coworking Space - Bandra, Mumbai",
			Category:         "open-house",
			IsActive:         false,
			DisplayOrder:     3,
			CurrentAttendees: 0,
		},
	}
}
