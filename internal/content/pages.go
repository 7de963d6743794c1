package content

// Page describes a site route the frontend renders. The backend serves
// the manifest so navigation and sitemaps stay in one place.
type Page struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

var sitePages = []Page{
	{Path: "/", Title: "Home"},
	{Path: "/about", Title: "About Us"},
	{Path: "/programs", Title: "Programs"},
	{Path: "/programs/:id", Title: "Program Detail"},
	{Path: "/gallery", Title: "Gallery"},
	{Path: "/get-involved", Title: "Get Involved"},
	{Path: "/donations", Title: "Donations"},
	{Path: "/partnerships", Title: "Partnerships"},
	{Path: "/partnerships/corporate", Title: "Corporate Partnerships"},
	{Path: "/partnerships/grants", Title: "Grant Collaborations"},
	{Path: "/partnerships/sponsorships", Title: "Program Sponsorships"},
	{Path: "/contact", Title: "Contact"},
	{Path: "/privacy", Title: "Privacy Policy"},
	{Path: "/terms", Title: "Terms of Service"},
}

// SitePages returns the route manifest.
func SitePages() []Page {
	out := make([]Page, len(sitePages))
	copy(out, sitePages)
	return out
}
