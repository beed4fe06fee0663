package clubsite

// Document names as stored by the storage adapter. Each name identifies one
// whole JSON document that is read and written as a unit.
const (
	eventsDocument   = "events.json"
	pagesDocument    = "pages.json"
	programsDocument = "programs.json"
	projectsDocument = "projects.json"
)

// ContentItem is one entry in the events document. The same shape is used
// for both the events and gallery sub-collections.
type ContentItem struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time,omitempty"`
	Location    string   `json:"location,omitempty"`
	Audience    string   `json:"audience,omitempty"`
	Image       *string  `json:"image"`
	Gallery     []string `json:"gallery,omitempty"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	AIGenerated bool     `json:"aiGenerated"`
	CreatedAt   string   `json:"createdAt"`
	RSVPLink    string   `json:"rsvpLink,omitempty"`
}

// EventsData is the events document: upcoming events plus the photo gallery.
type EventsData struct {
	Events  []ContentItem `json:"events"`
	Gallery []ContentItem `json:"gallery"`
}

func defaultEventsData() EventsData {
	return EventsData{Events: []ContentItem{}, Gallery: []ContentItem{}}
}

// Hero is the headline block at the top of a page.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// ValueItem is one named value in the mission section.
type ValueItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Mission holds the mission copy of a page.
type Mission struct {
	Title       string      `json:"title,omitempty"`
	Quote       string      `json:"quote,omitempty"`
	Content     string      `json:"content,omitempty"`
	Description string      `json:"description,omitempty"`
	Values      []ValueItem `json:"values,omitempty"`
}

// TeamMember is one officer or advisor on the about page.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Grade string `json:"grade,omitempty"`
	Bio   string `json:"bio,omitempty"`
	Focus string `json:"focus,omitempty"`
	Image string `json:"image,omitempty"`
}

// Team groups the people listed on the about page.
type Team struct {
	Officers []TeamMember `json:"officers,omitempty"`
	Advisors []TeamMember `json:"advisors,omitempty"`
}

// Stat is a single headline number, e.g. {"value": "120+", "label": "Members"}.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Metric is one row on the impact page.
type Metric struct {
	Metric      string `json:"metric"`
	Value       string `json:"value"`
	Change      string `json:"change,omitempty"`
	Description string `json:"description,omitempty"`
}

// Testimonial is a quote shown on the impact page.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
}

// Button is a labeled link inside a call-to-action block.
type Button struct {
	Label string `json:"label,omitempty"`
	Href  string `json:"href,omitempty"`
}

// PageCTA is the call-to-action block of a page.
type PageCTA struct {
	Title           string  `json:"title,omitempty"`
	Description     string  `json:"description,omitempty"`
	PrimaryButton   *Button `json:"primaryButton,omitempty"`
	SecondaryButton *Button `json:"secondaryButton,omitempty"`
}

// PageData is one named page's editable content. Every section is optional;
// renderers fall back to their own defaults for missing sections.
type PageData struct {
	Hero         *Hero         `json:"hero,omitempty"`
	Mission      *Mission      `json:"mission,omitempty"`
	Team         *Team         `json:"team,omitempty"`
	Stats        []Stat        `json:"stats,omitempty"`
	Metrics      []Metric      `json:"metrics,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty"`
	CallToAction *PageCTA      `json:"callToAction,omitempty"`
}

// PagesData is the pages document holding every editable page.
type PagesData struct {
	Home     *PageData `json:"home,omitempty"`
	About    *PageData `json:"about,omitempty"`
	Impact   *PageData `json:"impact,omitempty"`
	Programs *PageData `json:"programs,omitempty"`
}

func defaultPagesData() PagesData {
	return PagesData{
		Home:     &PageData{},
		About:    &PageData{},
		Impact:   &PageData{},
		Programs: &PageData{},
	}
}

// page returns a pointer to the slot for the named page, or nil for an
// unknown page name.
func (d *PagesData) page(name string) **PageData {
	switch name {
	case "home":
		return &d.Home
	case "about":
		return &d.About
	case "impact":
		return &d.Impact
	case "programs":
		return &d.Programs
	}
	return nil
}

// ComingSoon toggles placeholder messaging instead of live listings.
type ComingSoon struct {
	Enabled    bool   `json:"enabled"`
	Message    string `json:"message"`
	LaunchDate string `json:"launchDate,omitempty"`
}

// CTABlock is the call-to-action block of the programs/projects documents.
type CTABlock struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	ButtonLink  string `json:"buttonLink"`
}

// Track is one learning track in the programs document.
type Track struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon,omitempty"`
	Duration     string `json:"duration,omitempty"`
	HoursPerWeek string `json:"hoursPerWeek,omitempty"`
}

// Program is one program offering.
type Program struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Details    []string `json:"details,omitempty"`
	Commitment string   `json:"commitment,omitempty"`
	BestFor    string   `json:"bestFor,omitempty"`
	Outcomes   string   `json:"outcomes,omitempty"`
	Track      string   `json:"track,omitempty"`
	Status     string   `json:"status"`
	StartDate  string   `json:"startDate,omitempty"`
}

// FAQ is one question/answer pair on the programs page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ProgramsData is the programs document.
type ProgramsData struct {
	Hero         Hero       `json:"hero"`
	ComingSoon   ComingSoon `json:"comingSoon"`
	Tracks       []Track    `json:"tracks"`
	Programs     []Program  `json:"programs"`
	FAQs         []FAQ      `json:"faqs"`
	CallToAction CTABlock   `json:"callToAction"`
}

func defaultProgramsData() ProgramsData {
	return ProgramsData{
		Hero: Hero{
			Title:    "Programs That Meet You Where You Are",
			Subtitle: "Three pathways designed for beginners, builders, and future AI leaders.",
		},
		ComingSoon: ComingSoon{
			Enabled:    true,
			Message:    "Our programs are being designed with care—launching soon!",
			LaunchDate: "Spring 2026",
		},
		Tracks:   []Track{},
		Programs: []Program{},
		FAQs:     []FAQ{},
		CallToAction: CTABlock{
			Title:       "Interested in Our Programs?",
			Description: "Sign up to be notified when applications open.",
			ButtonText:  "Get Notified",
			ButtonLink:  "/get-involved",
		},
	}
}

// Category is one project category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Project is one project entry.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Status       string   `json:"status"`
	Image        *string  `json:"image,omitempty"`
	TeamSize     int      `json:"teamSize,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Impact       string   `json:"impact,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// ProjectsData is the projects document.
type ProjectsData struct {
	Hero         Hero       `json:"hero"`
	ComingSoon   ComingSoon `json:"comingSoon"`
	Categories   []Category `json:"categories"`
	Projects     []Project  `json:"projects"`
	CallToAction CTABlock   `json:"callToAction"`
}

func defaultProjectsData() ProjectsData {
	return ProjectsData{
		Hero: Hero{
			Title:    "Projects That Matter",
			Subtitle: "Real problems. Real data. Real impact.",
		},
		ComingSoon: ComingSoon{
			Enabled:    true,
			Message:    "Our first projects are in development!",
			LaunchDate: "Spring 2026",
		},
		Categories: []Category{},
		Projects:   []Project{},
		CallToAction: CTABlock{
			Title:       "Have a Project Idea?",
			Description: "We welcome project suggestions from students and community members.",
			ButtonText:  "Submit an Idea",
			ButtonLink:  "/get-involved",
		},
	}
}
