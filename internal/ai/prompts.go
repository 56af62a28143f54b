package ai

import (
	"fmt"
	"strings"
)

// Prompt builders for the marketing content generators. Each returns the
// templated prompt string sent to the generation backend; the handlers own
// field validation, these only assemble text.

// ProductDescriptionPrompt asks for a marketplace listing description.
func ProductDescriptionPrompt(productName, craftType, description, culturalContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write an engaging marketplace listing description for %q, a handcrafted %s piece.\n", productName, strings.ToLower(craftType))
	fmt.Fprintf(&b, "Maker's notes: %s\n", description)
	if culturalContext != "" {
		fmt.Fprintf(&b, "Cultural significance to weave in: %s\n", culturalContext)
	}
	b.WriteString("Highlight the traditional techniques, the materials and why the piece matters to collectors. Keep it under 200 words and end with a short list of hashtags.")
	return b.String()
}

// SocialPostPrompt asks for a social media post for the given platform.
func SocialPostPrompt(productName, description, platform string) string {
	if platform == "" {
		platform = "instagram"
	}
	return fmt.Sprintf(
		"Write a %s post promoting %q, a handcrafted piece. Details: %s\n"+
			"Tone: warm, celebrates traditional craftsmanship. Include a call to action and 3-5 hashtags.",
		strings.ToLower(platform), productName, description)
}

// MarketingCopyPrompt asks for an email campaign subject and body.
func MarketingCopyPrompt(productName, artisanStory, specialOffer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a marketing email promoting %q to craft enthusiasts.\n", productName)
	fmt.Fprintf(&b, "Artisan background: %s\n", artisanStory)
	if specialOffer != "" {
		fmt.Fprintf(&b, "Mention this offer: %s\n", specialOffer)
	}
	b.WriteString("Return a subject line on the first line, then a blank line, then the body. Emphasize authenticity and preserving traditional crafts.")
	return b.String()
}

// StoryPrompt asks for a long-form story about an artisan's craft.
func StoryPrompt(artisanName, craftType, personalStory, culturalSignificance string) string {
	return fmt.Sprintf(
		"Write a storytelling piece titled \"The Art of %s: A Journey with %s\".\n"+
			"Personal story: %s\n"+
			"Cultural significance: %s\n"+
			"Close with why supporting traditional artisans preserves cultural heritage. Around 300 words.",
		craftType, artisanName, personalStory, culturalSignificance)
}

// SEOPrompt asks for an SEO title, meta description and keyword tags.
func SEOPrompt(baseTitle, keywords string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate SEO content for a handcrafted product listing titled %q.", baseTitle)
	if keywords != "" {
		fmt.Fprintf(&b, " Work in these keywords: %s.", keywords)
	}
	b.WriteString("\nReturn three lines: an SEO title (max 60 chars), a meta description (max 160 chars), and a comma-separated tag list.")
	return b.String()
}
