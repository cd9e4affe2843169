package main

import "github.com/fwojciec/profscrape"

// Sample is a built-in profile stored by "demo seed".
type Sample struct {
	ID      string
	Profile *profscrape.Profile
}

// SampleProfiles returns fresh copies of the built-in demo profiles.
func SampleProfiles() []Sample {
	return []Sample{
		{
			ID: "john-doe",
			Profile: &profscrape.Profile{
				Name:            str("John Doe"),
				Headline:        str("Software Engineer at Tech Company"),
				Location:        str("San Francisco Bay Area"),
				ProfileImageURL: str("https://randomuser.me/api/portraits/men/32.jpg"),
				About:           str("Passionate software engineer with 5+ years of experience developing scalable web applications."),
				Experience: []profscrape.ExperienceEntry{
					{
						Title:       "Senior Software Engineer",
						Company:     "Tech Company",
						DateRange:   str("Jan 2020 - Present"),
						Location:    str("San Francisco, CA"),
						Description: str("Leading development of microservices architecture using Node.js and React."),
					},
					{
						Title:       "Software Engineer",
						Company:     "Startup Inc.",
						DateRange:   str("Jun 2018 - Dec 2019"),
						Location:    str("San Francisco, CA"),
						Description: str("Developed and maintained full-stack applications using React and Django."),
					},
				},
				Education: []profscrape.EducationEntry{
					{
						School:       "University of California, Berkeley",
						Degree:       str("Master of Science"),
						FieldOfStudy: str("Computer Science"),
						DateRange:    str("2016 - 2018"),
					},
					{
						School:       "University of Washington",
						Degree:       str("Bachelor of Science"),
						FieldOfStudy: str("Computer Science"),
						DateRange:    str("2012 - 2016"),
					},
				},
				Skills: []string{"JavaScript", "React", "Node.js", "Python", "AWS", "Docker", "GraphQL"},
				Recommendations: []profscrape.RecommendationEntry{
					{
						Author:       "Jane Smith",
						Relationship: str("Manager at Tech Company"),
						Text:         "John is an exceptional engineer who consistently delivers high-quality code.",
					},
				},
				ConnectionCount: num(500),
				Followers:       num(1200),
				AccessMode:      profscrape.AccessModeFull,
			},
		},
		{
			ID: "jane-smith",
			Profile: &profscrape.Profile{
				Name:            str("Jane Smith"),
				Headline:        str("Product Manager | MBA | Tech Enthusiast"),
				Location:        str("New York City"),
				ProfileImageURL: str("https://randomuser.me/api/portraits/women/43.jpg"),
				About:           str("Product manager with a passion for creating user-centered solutions that solve real problems."),
				Experience: []profscrape.ExperienceEntry{
					{
						Title:       "Senior Product Manager",
						Company:     "Enterprise Solutions Inc.",
						DateRange:   str("Mar 2021 - Present"),
						Location:    str("New York, NY"),
						Description: str("Leading product strategy and development for enterprise SaaS platform."),
					},
					{
						Title:       "Product Manager",
						Company:     "Digital Products Co.",
						DateRange:   str("Feb 2018 - Feb 2021"),
						Location:    str("Boston, MA"),
						Description: str("Managed full product lifecycle from conception to launch for mobile applications."),
					},
				},
				Education: []profscrape.EducationEntry{
					{
						School:       "Harvard Business School",
						Degree:       str("Master of Business Administration"),
						FieldOfStudy: str("Business Administration"),
						DateRange:    str("2016 - 2018"),
					},
					{
						School:       "Cornell University",
						Degree:       str("Bachelor of Science"),
						FieldOfStudy: str("Information Science"),
						DateRange:    str("2012 - 2016"),
					},
				},
				Skills: []string{"Product Strategy", "User Research", "Agile Methodologies", "Data Analysis", "Wireframing", "Product Roadmapping"},
				Recommendations: []profscrape.RecommendationEntry{
					{
						Author:       "Robert Chen",
						Relationship: str("CEO at Digital Products Co."),
						Text:         "Jane is an exceptional product manager who combines analytical skills with strong customer empathy.",
					},
				},
				ConnectionCount: num(873),
				Followers:       num(2450),
				AccessMode:      profscrape.AccessModeFull,
			},
		},
	}
}

func str(s string) *string { return &s }

func num(n int) *int { return &n }
