package model

// CategoryAll is the wildcard filter value.
const CategoryAll = "all"

// Categories lists the project filter values in display order.
var Categories = []string{
	CategoryAll,
	"Natural Language Processing",
	"Conversational AI",
	"Computer Vision",
	"Machine Learning",
}

// FilterProjects returns the projects whose Category equals category exactly,
// keeping their order. CategoryAll returns projects unchanged.
func FilterProjects(projects []Project, category string) []Project {
	if category == CategoryAll {
		return projects
	}
	filtered := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
