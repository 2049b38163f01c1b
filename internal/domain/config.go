package domain

// Banner is one slide of the landing carousel.
type Banner struct {
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title,omitempty"`
	Link     string `json:"link,omitempty"`
}

// Brand is a featured brand with its logo.
type Brand struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

// StoreConfig is the static store configuration loaded at startup.
// Read-only after load.
type StoreConfig struct {
	ContactPhone string   `json:"contactPhone"`
	Banners      []Banner `json:"banners"`
	Brands       []Brand  `json:"brands"`
}
