package content

// Program content is static editorial data; the backend serves it as JSON
// with the markdown body rendered to HTML.

type Program struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Image           string `json:"image,omitempty"`
	LongDescription string `json:"longDescription,omitempty"`
	Impact          string `json:"impact,omitempty"`
	Location        string `json:"location,omitempty"`
	Date            string `json:"date,omitempty"`
	Participants    string `json:"participants,omitempty"`
}

type ProgramCategory struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Programs    []Program `json:"programs"`
}

var programCategories = []ProgramCategory{
	{
		ID:          "youth",
		Title:       "Schools & Youth Empowerment",
		Description: "We believe that the foundation for a brighter South Africa starts in our schools.",
		Programs: []Program{
			{
				ID:          "anti-bullying",
				Title:       "Anti-Bullying & Violence Prevention",
				Description: "Educating students about respect, kindness, and conflict resolution.",
				LongDescription: "Our **Anti-Bullying program** works directly with schools to create safer environments for all students.\n\n" +
					"Through interactive workshops, peer mentoring, and teacher training, we help schools develop comprehensive anti-bullying policies and promote a culture of respect and kindness.",
				Impact:       "We have implemented our program in over 50 schools, reaching more than 15,000 students.",
				Location:     "Primary and secondary schools throughout South Africa",
				Date:         "School term programming with additional summer workshops",
				Participants: "Students, teachers, school administrators, and parents",
			},
			{
				ID:          "career-guidance",
				Title:       "Career Guidance & Skills Development",
				Description: "Preparing young minds for a future filled with opportunity through mentorship and hands-on training.",
				LongDescription: "Our **Career Guidance program** connects youth with professionals across various industries, providing exposure to career options and practical skills development.\n\n" +
					"Through job shadowing, internships, and skills workshops, we help young people discover their talents and prepare for meaningful employment.",
				Impact:       "Over 2,000 youth have participated, with 70% reporting they feel more confident about their future career prospects.",
				Location:     "Schools, community centers, and partner workplaces",
				Date:         "Quarterly career expos and weekly skills development workshops",
				Participants: "Secondary school students and recent graduates",
			},
			{
				ID:          "substance-abuse",
				Title:       "Substance Abuse Awareness",
				Description: "Using theatre, drama, and interactive sessions to educate youth on the dangers of drug and alcohol addiction.",
				LongDescription: "Our **Substance Abuse Awareness program** uses creative approaches including theatre, storytelling, and peer-led discussions to engage youth in meaningful conversations about substance abuse.\n\n" +
					"We provide factual information about the effects of drugs and alcohol, while building resilience and healthy coping mechanisms.",
				Impact:       "Our performances and workshops have reached over 10,000 young people.",
				Location:     "Schools, community centers, and youth programs across South Africa",
				Date:         "Year-round programming with intensive campaigns during school holidays",
				Participants: "Primary focus on ages 12-21, with additional programs for parents and educators",
			},
		},
	},
	{
		ID:          "gbv",
		Title:       "Gender-Based Violence & Mental Health Advocacy",
		Description: "No society can thrive when its people live in fear. We tackle gender-based violence (GBV) and mental health crises head-on.",
		Programs: []Program{
			{
				ID:          "gbv-awareness",
				Title:       "GBV Awareness & Prevention",
				Description: "Community workshops and survivor support networks addressing gender-based violence.",
				LongDescription: "Our **GBV Awareness program** runs community dialogues, survivor support circles, and school campaigns that confront the drivers of gender-based violence.\n\n" +
					"We partner with local police, clinics, and counselors so survivors find help in one place.",
				Impact:       "Thousands of community members reached through seminars and door-to-door campaigns.",
				Location:     "Townships and rural communities across KwaZulu-Natal and Gauteng",
				Participants: "Community members, survivors, local leaders",
			},
		},
	},
	{
		ID:          "rural",
		Title:       "Rural & Community Development",
		Description: "Empowerment starts with access. Our rural development programs focus on education, culture, and entrepreneurship.",
		Programs: []Program{
			{
				ID:          "rural-entrepreneurship",
				Title:       "Rural Entrepreneurship Support",
				Description: "Training and mentoring small business owners in rural communities.",
				LongDescription: "We equip rural entrepreneurs with **practical business skills** — bookkeeping, marketing, and access to micro-funding networks — so township and village businesses can grow sustainably.",
				Impact:       "Hundreds of small businesses supported with training and mentorship.",
				Location:     "Rural communities across South Africa",
				Participants: "Small business owners and aspiring entrepreneurs",
			},
		},
	},
	{
		ID:          "media",
		Title:       "Media, Arts & Theatre for Change",
		Description: "We use the power of storytelling to inspire transformation through performances, content creation, and digital campaigns.",
		Programs: []Program{
			{
				ID:          "youth-film",
				Title:       "Youth & Film Industry Development",
				Description: "Supporting young writers, producers, and actors entering the film industry.",
				LongDescription: "The **Youth & Film program** opens doors into the entertainment industry: writing rooms, production internships, and networking events connecting township talent with studios.",
				Impact:       "Dozens of young creatives placed in industry programs and internships.",
				Location:     "Johannesburg and Durban studios with township outreach",
				Participants: "Young writers, producers, actors, and crew",
			},
		},
	},
	{
		ID:          "faith",
		Title:       "Faith-Based & Community Outreach",
		Description: "Our work extends into places of worship and community centers, where people gather in search of hope and guidance.",
		Programs: []Program{
			{
				ID:          "community-relief",
				Title:       "Community Relief Help",
				Description: "Providing assistance during times of hardship and crisis.",
				LongDescription: "Working with congregations and community centers, our **relief program** distributes meals, warm clothing, and counselling support to families facing hard times.",
				Impact:       "Regular relief drives across partner communities.",
				Location:     "Places of worship and community centers",
				Participants: "Families in crisis, volunteers, faith leaders",
			},
		},
	},
	{
		ID:          "leadership",
		Title:       "Leadership & Policy Engagement",
		Description: "True change requires strong leadership. We work with policymakers, educators, and community leaders.",
		Programs: []Program{
			{
				ID:          "traditional-leadership",
				Title:       "Traditional Leadership Collaboration",
				Description: "Working with amakhosi and traditional structures to bridge culture and modern governance.",
				LongDescription: "Through **Ubukhosi Namakhosi** engagements we collaborate with traditional leaders on shared community values, preserving heritage while engaging modern policy structures.",
				Impact:       "Ongoing partnerships with traditional councils.",
				Location:     "Traditional council areas across KwaZulu-Natal",
				Participants: "Traditional leaders, community elders, policymakers",
			},
		},
	},
}

// ProgramCategories returns the full catalogue.
func ProgramCategories() []ProgramCategory {
	out := make([]ProgramCategory, len(programCategories))
	copy(out, programCategories)
	return out
}

// ProgramByID looks a program up across all categories.
func ProgramByID(id string) (Program, ProgramCategory, bool) {
	for _, c := range programCategories {
		for _, p := range c.Programs {
			if p.ID == id {
				return p, c, true
			}
		}
	}
	return Program{}, ProgramCategory{}, false
}
