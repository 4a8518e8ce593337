package assist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adaeze/cv-studio/internal/types"
)

func TestSummaryPrompt_UsesOnlyProvidedFacts(t *testing.T) {
	cv := types.CV{
		Experience: []types.WorkExperience{
			{JobTitle: "Designer", Company: "Andela", StartDate: "2021-04", Current: true},
		},
		Skills: []types.Skill{{Name: "Figma"}, {Name: "User Research"}},
	}

	prompt := SummaryPrompt(cv)
	assert.Contains(t, prompt, "Current title: Designer")
	assert.Contains(t, prompt, "Designer at Andela (Apr 2021 - Present)")
	assert.Contains(t, prompt, "Figma, User Research")
	assert.Contains(t, prompt, "Do not invent")
}

func TestCurrentTitle_PrefersOngoingRole(t *testing.T) {
	cv := types.CV{
		Experience: []types.WorkExperience{
			{JobTitle: "Analyst", Company: "GTBank"},
			{JobTitle: "Lead Analyst", Company: "Flutterwave", Current: true},
		},
	}
	assert.Equal(t, "Lead Analyst", currentTitle(cv))

	cv.Experience[1].Current = false
	assert.Equal(t, "Analyst", currentTitle(cv))

	assert.Equal(t, "", currentTitle(types.CV{}))
}

func TestBulletsPrompt_RequestsJSONArray(t *testing.T) {
	prompt := BulletsPrompt(types.WorkExperience{
		JobTitle:    "Engineer",
		Company:     "Kuda",
		StartDate:   "2020-01",
		EndDate:     "2022-06",
		Description: "Worked on the payments team",
	})
	assert.Contains(t, prompt, "JSON array of strings")
	assert.Contains(t, prompt, "Jan 2020 - Jun 2022")
	assert.Contains(t, prompt, "Worked on the payments team")
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `["a","b"]`, `["a","b"]`},
		{"json fence", "```json\n[\"a\"]\n```", `["a"]`},
		{"bare fence", "```\n[\"a\"]\n```", `["a"]`},
		{"whitespace", "  [1]  ", "[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "")
	assert.Error(t, err)
}
