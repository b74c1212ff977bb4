package domain

// Product is an immutable catalog record. Edits replace the whole value.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Processor     string   `json:"processor"`
	Memory        string   `json:"ram"`
	Storage       string   `json:"storage"`
	Graphics      string   `json:"graphics"`
	Display       string   `json:"display"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
}
