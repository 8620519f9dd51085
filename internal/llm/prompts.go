package llm

import "fmt"

// SectionPrompt builds the prompt for generating one section's content.
// Slide sections ask for bullet points, document sections for prose.
func SectionPrompt(topic, sectionTitle, docType string) string {
	if docType == "docx" {
		return fmt.Sprintf(`You are writing a section for a professional document about: %s

Section Title: %s

Write detailed, well-structured content for this section (3-4 paragraphs).
Make it professional, informative, and engaging.
Use clear language and proper formatting.
Do not include the section title in your response.`, topic, sectionTitle)
	}
	return fmt.Sprintf(`You are creating content for a PowerPoint slide about: %s

Slide Title: %s

Write concise, impactful content for this slide (4-6 bullet points).
Keep it brief and presentation-friendly.
Each point should be clear and actionable.
Do not include the slide title in your response.
Format as bullet points using • symbol.`, topic, sectionTitle)
}

// RefinePrompt builds the prompt for rewriting existing content under a
// user instruction.
func RefinePrompt(currentContent, instruction string) string {
	return fmt.Sprintf(`Current Content:
%s

User Instruction: %s

Rewrite the content following the user's instruction.
Maintain professional quality and coherence.
Keep the same general structure unless asked to change it.
Do not add any preamble or explanation, just provide the refined content.`, currentContent, instruction)
}

// TemplatePrompt builds the prompt for suggesting a numbered outline.
func TemplatePrompt(topic, docType string, numSections int) string {
	if docType == "docx" {
		return fmt.Sprintf(`Create an outline for a professional document about: %s

Provide %d section titles that would make a comprehensive document.
Return ONLY the section titles, one per line, numbered.
Example format:
1. Introduction
2. Background
3. Analysis`, topic, numSections)
	}
	return fmt.Sprintf(`Create a PowerPoint presentation outline about: %s

Provide %d slide titles for an effective presentation.
Return ONLY the slide titles, one per line, numbered.
Example format:
1. Title Slide
2. Overview
3. Key Points`, topic, numSections)
}
