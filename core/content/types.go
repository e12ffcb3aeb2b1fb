package content

// Blog is an editorial article on the public site.
type Blog struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt,omitempty"`
	Content         string   `json:"content"`
	FeaturedImage   string   `json:"featuredImage,omitempty"`
	Author          string   `json:"author"`
	AuthorImage     string   `json:"authorImage,omitempty"`
	Category        string   `json:"category,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	ReadTime        int      `json:"readTime,omitempty"`
	Views           int      `json:"views,omitempty"`
	IsFeatured      bool     `json:"isFeatured,omitempty"`
	IsPublished     bool     `json:"isPublished,omitempty"`
	PublishedAt     string   `json:"publishedAt,omitempty"`
	DisplayOrder    int      `json:"displayOrder,omitempty"`
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	MetaKeywords    string   `json:"metaKeywords,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}

// News is a press or industry update, optionally attributed to an outside
// source.
type News struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Summary      string   `json:"summary,omitempty"`
	Content      string   `json:"content"`
	Image        string   `json:"image,omitempty"`
	Source       string   `json:"source,omitempty"`
	SourceURL    string   `json:"sourceUrl,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	IsFeatured   bool     `json:"isFeatured,omitempty"`
	IsPublished  bool     `json:"isPublished,omitempty"`
	PublishedAt  string   `json:"publishedAt,omitempty"`
	DisplayOrder int      `json:"displayOrder,omitempty"`
	Views        int      `json:"views,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
}

// Event is a community or marketing event with registration.
type Event struct {
	ID               int    `json:"id,omitempty"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	EventDate        string `json:"eventDate"`
	EventTime        string `json:"eventTime"`
	Location         string `json:"location"`
	Image            string `json:"image,omitempty"`
	Category         string `json:"category"`
	RegistrationLink string `json:"registrationLink,omitempty"`
	IsFeatured       bool   `json:"isFeatured"`
	IsActive         bool   `json:"isActive"`
	DisplayOrder     int    `json:"displayOrder"`
	MaxAttendees     int    `json:"maxAttendees,omitempty"`
	CurrentAttendees int    `json:"currentAttendees"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}
