package catalog

// PriceType is the billing granularity of a workspace listing.
type PriceType string

const (
	PriceHourly  PriceType = "hourly"
	PriceDaily   PriceType = "daily"
	PriceMonthly PriceType = "monthly"
)

// Availability is the bookable state of a listing.
type Availability string

const (
	Available   Availability = "available"
	Busy        Availability = "busy"
	Unavailable Availability = "unavailable"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Property is a bookable workspace listing. City and category hold slugs,
// not display names, so they compose directly into SEO URLs.
type Property struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Slug         string       `json:"slug"`
	Category     string       `json:"category"`
	City         string       `json:"city"`
	Address      string       `json:"address"`
	Price        float64      `json:"price"`
	PriceType    PriceType    `json:"priceType"`
	Amenities    []string     `json:"amenities"`
	Photos       []string     `json:"photos"`
	Description  string       `json:"description"`
	Featured     bool         `json:"featured"`
	Availability Availability `json:"availability"`
	Rating       float64      `json:"rating"`
	Reviews      int          `json:"reviews"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`

	// Optional price breakdown tuning for the booking widget.
	IncludeServiceFee *bool    `json:"includeServiceFee,omitempty"`
	IncludeTax        *bool    `json:"includeTax,omitempty"`
	ServiceFeePercent *float64 `json:"serviceFeePercent,omitempty"`
	TaxPercent        *float64 `json:"taxPercent,omitempty"`
}

// Category is a workspace type shown on browse pages.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Featured    bool   `json:"featured"`
}

// City is a serviced location shown on browse pages.
type City struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	Featured    bool        `json:"featured"`
	Coordinates Coordinates `json:"coordinates"`
}
