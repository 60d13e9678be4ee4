package service

import (
	"strings"
	"testing"

	"github.com/Skbaji74/scan-nourish-ai/internal/domain"
)

func TestBuildAnalysisPromptEmptyProfile(t *testing.T) {
	prompt := ScanPromptBuilder{}.BuildAnalysisPrompt(domain.HealthProfile{})

	for _, line := range []string{
		"- Allergies: None specified",
		"- Health Conditions: None specified",
		"- Dietary Preferences: None specified",
	} {
		if !strings.Contains(prompt, line) {
			t.Fatalf("expected prompt to contain %q", line)
		}
	}

	if !strings.Contains(prompt, "IMPORTANT: Respond ONLY with valid JSON") {
		t.Fatalf("expected strict JSON instruction in prompt")
	}
	if !strings.Contains(prompt, "return a score of 0") {
		t.Fatalf("expected not-a-food-label rule in prompt")
	}
}

func TestBuildAnalysisPromptWithProfile(t *testing.T) {
	prompt := ScanPromptBuilder{}.BuildAnalysisPrompt(domain.HealthProfile{
		Allergies:   []string{"peanuts", "soy"},
		Conditions:  []string{"diabetes"},
		Preferences: []string{"vegan"},
	})

	if !strings.Contains(prompt, "- Allergies: peanuts, soy") {
		t.Fatalf("expected comma-joined allergies, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- Health Conditions: diabetes") {
		t.Fatalf("expected conditions in prompt")
	}
	if !strings.Contains(prompt, "- Dietary Preferences: vegan") {
		t.Fatalf("expected preferences in prompt")
	}
}

func TestBuildSystemPromptWithoutScan(t *testing.T) {
	prompt := ChatPromptBuilder{}.BuildSystemPrompt(nil)

	if !strings.Contains(prompt, "You are Health Assistant") {
		t.Fatalf("expected persona in system prompt")
	}
	if strings.Contains(prompt, "Scan Context:") {
		t.Fatalf("expected no scan context without a scan")
	}
}

func TestBuildSystemPromptWithScan(t *testing.T) {
	scan := &domain.ScanResult{
		Score:       72,
		Ingredients: []string{"sugar", "salt"},
		Highlights:  []string{"High sugar"},
		Summary:     "Moderate",
	}

	prompt := ChatPromptBuilder{}.BuildSystemPrompt(scan)

	for _, line := range []string{
		"Scan Context:",
		"Summary: Moderate",
		"Key Points: High sugar",
		"Ingredients: sugar, salt",
		"Health Score: 72",
	} {
		if !strings.Contains(prompt, line) {
			t.Fatalf("expected system prompt to contain %q, got:\n%s", line, prompt)
		}
	}
}

func TestBuildSystemPromptSkipsAbsentFields(t *testing.T) {
	scan := &domain.ScanResult{Score: 40}

	prompt := ChatPromptBuilder{}.BuildSystemPrompt(scan)

	if strings.Contains(prompt, "Summary:") {
		t.Fatalf("expected no summary line for empty summary")
	}
	if strings.Contains(prompt, "Key Points:") || strings.Contains(prompt, "Ingredients:") {
		t.Fatalf("expected no list lines for empty lists")
	}
	if !strings.Contains(prompt, "Health Score: 40") {
		t.Fatalf("expected score line")
	}
}
