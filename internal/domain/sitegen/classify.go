package sitegen

import "strings"

type tagRule struct {
	tag      BusinessType
	keywords []string
}

// Checked in order; the first rule with a keyword contained in the prompt wins.
var tagRules = []tagRule{
	{tag: BusinessRestaurant, keywords: []string{"restaurant", "food", "menu"}},
	{tag: BusinessPortfolio, keywords: []string{"portfolio", "designer", "artist"}},
	{tag: BusinessTech, keywords: []string{"tech", "startup", "saas"}},
	{tag: BusinessBlog, keywords: []string{"blog", "travel", "photography"}},
}

type titleRule struct {
	title    string
	keywords []string
}

// Site names have their own keywords and priority; photography gets a name but classifies as a blog.
var titleRules = []titleRule{
	{title: "Bella Vista Restaurant", keywords: []string{"restaurant"}},
	{title: "Creative Portfolio", keywords: []string{"portfolio"}},
	{title: "TechFlow Solutions", keywords: []string{"tech", "startup"}},
	{title: "The Daily Blog", keywords: []string{"blog"}},
	{title: "Lens & Light Photography", keywords: []string{"photography"}},
	{title: "FitLife Gym", keywords: []string{"fitness", "gym"}},
	{title: "Brew & Beans Café", keywords: []string{"coffee", "cafe"}},
}

// FallbackTitle is used when no title rule matches.
const FallbackTitle = "Your Business"

// Classify maps a prompt to a business type by case-insensitive substring tests.
// It is total: any input, including "", yields a tag.
func Classify(prompt string) BusinessType {
	lowered := strings.ToLower(prompt)
	for _, rule := range tagRules {
		if containsAny(lowered, rule.keywords) {
			return rule.tag
		}
	}
	return BusinessDefault
}

// ExtractTitle picks a site name for the prompt from its own ordered rule table.
func ExtractTitle(prompt string) string {
	lowered := strings.ToLower(prompt)
	for _, rule := range titleRules {
		if containsAny(lowered, rule.keywords) {
			return rule.title
		}
	}
	return FallbackTitle
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
