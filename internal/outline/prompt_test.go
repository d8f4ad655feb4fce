package outline

import (
	"strings"
	"testing"

	"github.com/slidecraft/slidecraft/internal/models"
)

func TestStyleDirectiveIsTotal(t *testing.T) {
	tags := []string{
		StylePhotorealistic,
		StyleMinimalist,
		StyleIllustrated,
		StyleCorporate,
		StyleCreative,
	}

	seen := map[string]string{}
	for _, tag := range tags {
		directive := StyleDirective(tag)
		if directive == "" {
			t.Errorf("Style %q maps to an empty directive", tag)
		}
		if directive == defaultStyleDirective {
			t.Errorf("Style %q maps to the default directive", tag)
		}
		if prev, dup := seen[directive]; dup {
			t.Errorf("Styles %q and %q share a directive", prev, tag)
		}
		seen[directive] = tag
	}

	for _, unknown := range []string{"", "vaporwave", "PHOTOREALISTIC"} {
		if StyleDirective(unknown) != defaultStyleDirective {
			t.Errorf("Expected default directive for %q", unknown)
		}
	}
}

func TestIsArticleMode(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		hasAttachment bool
		threshold     int
		expected      bool
	}{
		{
			name:     "short topic",
			text:     "the history of aviation",
			expected: false,
		},
		{
			name:     "exactly at default threshold stays topic mode",
			text:     strings.Repeat("a", 250),
			expected: false,
		},
		{
			name:     "one past default threshold is article mode",
			text:     strings.Repeat("a", 251),
			expected: true,
		},
		{
			name:          "attachment forces article mode",
			text:          "",
			hasAttachment: true,
			expected:      true,
		},
		{
			name:      "custom threshold",
			text:      strings.Repeat("a", 50),
			threshold: 10,
			expected:  true,
		},
		{
			name:     "multibyte text counted in runes",
			text:     strings.Repeat("語", 250),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsArticleMode(tt.text, tt.hasAttachment, tt.threshold); got != tt.expected {
				t.Errorf("IsArticleMode() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestBuildPromptTopicMode(t *testing.T) {
	params := models.GenerationParams{
		Complexity: models.ComplexityExecutive,
		Style:      StyleMinimalist,
		Language:   "German",
		SlideCount: 7,
	}
	prompt := buildPrompt(models.SourceInput{Text: "offshore wind"}, params, false, 0)

	for _, want := range []string{
		`"offshore wind"`,
		"Create exactly 7 slides",
		"executive audience",
		"in German",
		StyleDirective(StyleMinimalist),
		"title slide",
		"conclusion or summary",
		"JSON array",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Topic prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptArticleModeCapsContent(t *testing.T) {
	longText := strings.Repeat("x", 25000)
	params := models.GenerationParams{Language: "English", SlideCount: 5, Complexity: models.ComplexityGeneral}
	prompt := buildPrompt(models.SourceInput{Text: longText}, params, true, 0)

	if !strings.Contains(prompt, "SOURCE MATERIAL") {
		t.Error("Article prompt missing source material section")
	}
	if strings.Contains(prompt, strings.Repeat("x", 20001)) {
		t.Error("Source material not capped at 20000 chars")
	}
	if !strings.Contains(prompt, strings.Repeat("x", 20000)) {
		t.Error("Capped source material missing from prompt")
	}
}

func TestBuildPromptAttachmentOnly(t *testing.T) {
	input := models.SourceInput{Attachment: &models.AttachedDocument{Name: "deck.pdf", MIMEType: "application/pdf"}}
	params := models.GenerationParams{Language: "English", SlideCount: 4, Complexity: models.ComplexityGeneral}
	prompt := buildPrompt(input, params, true, 0)

	if !strings.Contains(prompt, "attached document") {
		t.Errorf("Attachment-only prompt should reference the attached document:\n%s", prompt)
	}
	if strings.Contains(prompt, "SOURCE MATERIAL") {
		t.Error("Attachment-only prompt should not contain an empty source material section")
	}
}
