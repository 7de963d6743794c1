package taxonomy

import "strings"

// The gallery taxonomy is the single authoritative source consulted by both
// the fetch service (for descriptions) and the filter surface (for the
// category/subcategory lists). Items fetched from storage may reference
// categories that are not listed here; those still render, they just carry no
// descriptive text.

type Subcategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

const Uncategorized = "uncategorized"

var categories = []Category{
	{
		ID:          "youth",
		Name:        "Youth Engagement",
		Description: "Programs and initiatives focused on empowering young South Africans",
		Subcategories: []Subcategory{
			{ID: "youth-school", Name: "School Visits", ParentID: "youth"},
			{ID: "youth-workshops", Name: "Youth Workshops", ParentID: "youth"},
			{ID: "youth-leadership", Name: "Leadership Development", ParentID: "youth"},
		},
	},
	{
		ID:          "community",
		Name:        "Community Outreach",
		Description: "Building stronger communities through engagement and support",
		Subcategories: []Subcategory{
			{ID: "community-events", Name: "Community Events", ParentID: "community"},
			{ID: "community-workshops", Name: "Educational Workshops", ParentID: "community"},
		},
	},
	{
		ID:          "culture",
		Name:        "Cultural Heritage",
		Description: "Celebrating and preserving South Africa's rich cultural heritage",
		Subcategories: []Subcategory{
			{ID: "culture-celebrations", Name: "Cultural Celebrations", ParentID: "culture"},
			{ID: "culture-preservation", Name: "Heritage Preservation", ParentID: "culture"},
		},
	},
	{
		ID:          "events",
		Name:        "Special Events",
		Description: "Key moments, celebrations, and significant gatherings",
		Subcategories: []Subcategory{
			{ID: "events-fundraisers", Name: "Fundraisers", ParentID: "events"},
			{ID: "events-conferences", Name: "Conferences", ParentID: "events"},
		},
	},
}

// categoryDescriptions covers the storage-folder categories beyond the four
// curated ones; folders on the provider side predate the curated list.
var categoryDescriptions = map[string]string{
	"homeless-people":    "Supporting and uplifting those living on the streets",
	"ubukhosi-namakhosi": "Honoring and preserving traditional culture and leadership",
	"community-relief":   "Providing assistance during times of hardship and crisis",
	"youth":              "Empowering the next generation through various programs",
	"motivation":         "Inspiring positive change and personal growth",
	"youth-and-film":     "Supporting youth involvement in the film and entertainment industry",
	"home-care":          "Providing care and comfort to those in need",
	"family-counseling":  "Supporting families through professional guidance",
	"women":              "Empowering women through various initiatives and programs",
	"schools":            "Supporting educational development and growth",
	"community":          "Building stronger communities through engagement and support",
	"culture":            "Celebrating and preserving South Africa's rich cultural heritage",
	"events":             "Key moments, celebrations, and significant gatherings",
}

var subcategoryDescriptions = map[string]map[string]string{
	"homeless-people": {
		"counselling-data": "Counselling and data collection to improve lives",
		"warm-clothes":     "Providing warm clothing during winter months",
		"better-life":      "Introducing pathways to a better quality of life",
		"loved-needed":     "Making the homeless feel valued and needed",
		"decent-meals":     "Providing nutritious meals on a regular basis",
		"lost-destitute":   "Caring for the lost and destitute in our communities",
	},
	"ubukhosi-namakhosi": {
		"modern-society":      "Integrating traditional culture into modern society",
		"traditional-rituals": "Preserving important traditional practices",
		"ceremonies":          "Observing and honoring traditional ceremonies",
		"common-values":       "Sharing values that unite communities",
		"traditional-leaders": "Collaboration with traditional leadership",
		"multicultural":       "Celebrating diversity and various cultural expressions",
		"promoting-culture":   "Initiatives to promote cultural awareness",
	},
	"community-relief": {
		"hard-times": "Assisting communities during difficult periods",
	},
	"youth": {
		"dance-competitions":   "Youth expression through dance in townships",
		"sports-gymnastics":    "Promoting athletic activities and gymnastics",
		"entertainment":        "Youth-focused entertainment programs",
		"training-development": "Skills training and personal development",
		"city-businesses":      "Supporting young entrepreneurs in urban areas",
		"township-motivation":  "Inspiring youth in township communities",
		"township-sports":      "Promoting sports activities in townships",
		"workshops":            "Educational workshops for skills development",
		"township-businesses":  "Supporting young entrepreneurs in townships",
	},
	"motivation": {
		"life-saving-seminars": "Seminars focused on mental health and wellbeing",
		"gbv-seminars":         "Workshops addressing gender-based violence issues",
		"gbv-programs":         "Programs combating gender-based violence",
	},
	"youth-and-film": {
		"film-professionals": "Supporting young writers, producers, and actors",
		"networking":         "Creating opportunities for industry connections",
	},
}

// Categories returns the curated two-level taxonomy used by the filter UI.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func CategoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func SubcategoriesOf(categoryID string) []Subcategory {
	c, ok := CategoryByID(categoryID)
	if !ok {
		return nil
	}
	return c.Subcategories
}

// ValidPair reports whether subcategoryID belongs to categoryID's
// subcategory set. An empty subcategory is always valid.
func ValidPair(categoryID, subcategoryID string) bool {
	if subcategoryID == "" {
		return true
	}
	for _, s := range SubcategoriesOf(categoryID) {
		if s.ID == subcategoryID {
			return true
		}
	}
	return false
}

// DisplayName turns a taxonomy id into a human-readable label.
func DisplayName(id string) string {
	// Renamed categories keep their marketing labels.
	switch id {
	case "youth-and-film":
		return "Youth & Film Industry"
	case "community-relief":
		return "Community Relief Help"
	}

	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(id)
	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Describe composes the descriptive text for an item from the category and
// subcategory lookup tables.
func Describe(categoryID, subcategoryID string) string {
	catName := DisplayName(categoryID)
	catDesc := categoryDescriptions[categoryID]
	if catDesc == "" {
		if c, ok := CategoryByID(categoryID); ok {
			catDesc = c.Description
		}
	}

	if subcategoryID == "" {
		if catDesc == "" {
			return catName
		}
		return catDesc + " - " + catName
	}

	subName := DisplayName(subcategoryID)
	subDesc := subcategoryDescriptions[categoryID][subcategoryID]
	if subDesc == "" {
		return catName + ": " + subName
	}
	return subDesc + " - " + catName + ": " + subName
}
