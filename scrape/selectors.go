package scrape

// Profile page selectors. These break whenever the site changes its
// markup; keep them in one place so they can be updated together.

// PublicSelectors locate fields on the anonymous preview card shown behind
// the auth wall.
type PublicSelectors struct {
	Name         string
	Headline     string
	Location     string
	ProfileImage string
}

// FullSelectors locate fields on the complete profile page.
type FullSelectors struct {
	Name         string
	Headline     string
	Location     string
	ProfileImage string

	// AboutExpand is the optional "see more" control in the about section.
	AboutExpand string
	About       string

	ExperienceItem        string
	ExperienceTitle       string
	ExperienceCompany     string
	ExperienceDateRange   string
	ExperienceLocation    string
	ExperienceDescription string

	EducationItem      string
	EducationSchool    string
	EducationDegree    string
	EducationField     string
	EducationDateRange string

	// SkillsNav reveals the skills section; SkillsReady appears once it is loaded.
	SkillsNav   string
	SkillsReady string
	Skill       string

	RecommendationsNav   string
	RecommendationsReady string
	RecommendationItem   string
	RecommendationAuthor string
	RecommendationRole   string
	RecommendationText   string

	Connections string
	Followers   string
}

// Selectors groups the markup variants the pipeline understands.
type Selectors struct {
	Public PublicSelectors
	Full   FullSelectors
}

// DefaultSelectors returns the selectors for the current profile markup.
func DefaultSelectors() Selectors {
	return Selectors{
		Public: PublicSelectors{
			Name:         "h1.top-card-layout__title",
			Headline:     "h2.top-card-layout__headline",
			Location:     ".top-card-layout__card .top-card__subline-item",
			ProfileImage: ".top-card-layout__card .profile-photo img",
		},
		Full: FullSelectors{
			Name:         "h1.text-heading-xlarge",
			Headline:     ".text-body-medium.break-words",
			Location:     ".text-body-small.inline.t-black--light.break-words",
			ProfileImage: ".pv-top-card-profile-picture__image",

			AboutExpand: "div#about + div + div button.inline-show-more-text__button",
			About:       "div#about + div + div span.visually-hidden",

			ExperienceItem:        "li.artdeco-list__item.pvs-list__item--line-separated",
			ExperienceTitle:       ".t-bold span",
			ExperienceCompany:     ".t-normal span",
			ExperienceDateRange:   ".t-normal.t-black--light span",
			ExperienceLocation:    ".t-normal.t-black--light span:nth-child(2)",
			ExperienceDescription: ".pvs-list__outer-container .pvs-list__item--line-separated .visually-hidden",

			EducationItem:      "section#education-section li",
			EducationSchool:    ".t-bold span",
			EducationDegree:    ".t-normal span",
			EducationField:     ".t-normal span:nth-child(2)",
			EducationDateRange: ".t-normal.t-black--light span",

			SkillsNav:   `a[href="#skills"]`,
			SkillsReady: ".pvs-entity",
			Skill:       "section#skills ~ section .pvs-entity .pv-skill-category-entity__name-text",

			RecommendationsNav:   `a[href="#recommendations"]`,
			RecommendationsReady: ".pvs-entity",
			RecommendationItem:   "section#recommendations ~ section .pvs-entity",
			RecommendationAuthor: ".t-bold span",
			RecommendationRole:   ".t-normal span",
			RecommendationText:   ".pvs-list__outer-container .visually-hidden",

			Connections: ".pv-top-card--list span.t-bold",
			Followers:   ".pvs-list__item--with-border span.t-bold",
		},
	}
}
