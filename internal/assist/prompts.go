package assist

import (
	"fmt"
	"strings"

	"github.com/adaeze/cv-studio/internal/format"
	"github.com/adaeze/cv-studio/internal/types"
)

// SummaryPrompt builds the prompt for drafting a professional summary. Only
// facts already present in the CV go into the prompt; the model is told not
// to invent experience.
func SummaryPrompt(cv types.CV) string {
	var sb strings.Builder

	sb.WriteString("You are a professional CV writer. Draft a concise professional summary (2-3 sentences, first person implied, no pronouns) for the candidate below.\n")
	sb.WriteString("Use ONLY the facts provided. Do not invent employers, years, or skills.\n")
	sb.WriteString("Return plain text only, no markdown.\n\n")

	if title := currentTitle(cv); title != "" {
		sb.WriteString("Current title: " + title + "\n")
	}
	for _, exp := range cv.Experience {
		sb.WriteString(fmt.Sprintf("Role: %s at %s (%s)\n",
			exp.JobTitle, exp.Company, format.DateRange(exp.StartDate, exp.EndDate, exp.Current)))
	}
	for _, edu := range cv.Education {
		sb.WriteString(fmt.Sprintf("Education: %s, %s\n", edu.Degree, edu.Institution))
	}
	if len(cv.Skills) > 0 {
		names := make([]string, 0, len(cv.Skills))
		for _, s := range cv.Skills {
			names = append(names, s.Name)
		}
		sb.WriteString("Skills: " + strings.Join(names, ", ") + "\n")
	}

	return sb.String()
}

// currentTitle picks the candidate's working title from experience: the
// first ongoing role wins, otherwise the first entry in stored order.
func currentTitle(cv types.CV) string {
	for _, exp := range cv.Experience {
		if exp.Current {
			return strings.TrimSpace(exp.JobTitle)
		}
	}
	if len(cv.Experience) > 0 {
		return strings.TrimSpace(cv.Experience[0].JobTitle)
	}
	return ""
}

// BulletsPrompt builds the prompt for drafting achievement bullets for one
// role. The response is requested as a JSON array of strings.
func BulletsPrompt(exp types.WorkExperience) string {
	var sb strings.Builder

	sb.WriteString("You are a professional CV writer. Draft 3-5 achievement bullet points for the role below.\n")
	sb.WriteString("Each bullet starts with a strong verb and stays under 20 words. Prefer measurable outcomes where the description supports them.\n")
	sb.WriteString("Return ONLY a JSON array of strings, no markdown, no explanation.\n\n")

	sb.WriteString(fmt.Sprintf("Role: %s\nCompany: %s\nPeriod: %s\n",
		exp.JobTitle, exp.Company, format.DateRange(exp.StartDate, exp.EndDate, exp.Current)))
	if desc := strings.TrimSpace(exp.Description); desc != "" {
		sb.WriteString("Current description:\n\"\"\"\n" + desc + "\n\"\"\"\n")
	}

	return sb.String()
}
