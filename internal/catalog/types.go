package catalog

// Character mirrors a summary record returned by /characters.
type Character struct {
	Name      string   `json:"name"`
	BirthYear string   `json:"birth_year"`
	Gender    string   `json:"gender"`
	Homeworld string   `json:"homeworld"`
	Species   []string `json:"species"`
	Films     []string `json:"films"`

	// Optional display attributes. The list endpoint may omit them.
	Height    string `json:"height,omitempty"`
	Mass      string `json:"mass,omitempty"`
	HairColor string `json:"hair_color,omitempty"`
	SkinColor string `json:"skin_color,omitempty"`
	EyeColor  string `json:"eye_color,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Page is one page of /characters results.
type Page struct {
	Results []Character `json:"results"`
	Total   int         `json:"total"`
}

// Planet is the subset of a homeworld resource roster displays.
type Planet struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Species is the subset of a species resource roster displays.
type Species struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Film is the subset of a film resource roster displays.
type Film struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}
