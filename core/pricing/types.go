package pricing

// PlanCategory groups plans by workspace type on the pricing page.
type PlanCategory string

const (
	CategoryCoworking PlanCategory = "coworking"
	CategoryPrivate   PlanCategory = "private"
	CategoryVirtual   PlanCategory = "virtual"
	CategoryMeeting   PlanCategory = "meeting"
)

// Plan is a published membership tier.
type Plan struct {
	ID           int          `json:"id,omitempty"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Category     PlanCategory `json:"category"`
	Price        float64      `json:"price"`
	Unit         string       `json:"unit"`
	Features     []string     `json:"features"`
	IsPopular    bool         `json:"isPopular"`
	DisplayOrder int          `json:"displayOrder"`
	IsActive     bool         `json:"isActive"`
}

// AddonService is an a-la-carte extra sold alongside plans.
type AddonService struct {
	ID           int     `json:"id,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	Icon         string  `json:"icon,omitempty"`
	DisplayOrder int     `json:"displayOrder"`
	IsActive     bool    `json:"isActive"`
}

// FAQ is a question shown on the pricing page.
type FAQ struct {
	ID           int    `json:"id,omitempty"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}
