package generator

import (
	"fmt"

	"portfolio-backend/internal/review"
)

const SystemPrompt = `You are an AI that generates professional client reviews for a portfolio website. A client will provide their selections from a form and optionally a short comment.

Your task is to take the selected options and optional comment, and generate a polished, readable paragraph as a client testimonial. Include all selected options naturally in the text, include the optional comment if provided, and end with the recommendation statement.

Guidelines:
- Keep the tone professional yet warm
- Make it sound natural and authentic
- Include all form selections naturally in the flow
- If there's an optional comment, weave it in seamlessly
- Keep it to 2-3 sentences
- End with the recommendation naturally`

// UserPrompt interpolates the fields verbatim.
func UserPrompt(f review.Fields) string {
	comment := f.OptionalComment
	if comment == "" {
		comment = "None provided"
	}
	return fmt.Sprintf(`Generate a professional testimonial with these details:
- Overall Experience: %s
- Project Type: %s
- Delivery: %s
- Communication: %s
- Optional Comment: %s
- Would Recommend: %s`,
		f.OverallExperience, f.ProjectType, f.Delivery, f.Communication, comment, f.WouldRecommend)
}
