package resume

import (
	"context"
	"strings"
	"testing"
)

func TestBuildContextDeterministic(t *testing.T) {
	first := BuildContext(SeedResume())
	second := BuildContext(SeedResume())
	if first != second {
		t.Fatalf("expected identical context for identical resume")
	}
}

func TestBuildContextSectionsInOrder(t *testing.T) {
	doc := SeedResume()
	got := BuildContext(doc)

	if !strings.Contains(got, "You are an AI assistant for Aditya Avinash Mane's portfolio website") {
		t.Fatalf("missing role instruction, got:\n%s", got)
	}

	prev := -1
	for _, group := range doc.Skills {
		line := "- " + group.Category + ": " + strings.Join(group.Items, ", ")
		if n := strings.Count(got, line); n != 1 {
			t.Fatalf("expected skill line %q exactly once, found %d", line, n)
		}
		idx := strings.Index(got, line)
		if idx <= prev {
			t.Fatalf("skill category %q out of input order", group.Category)
		}
		prev = idx
	}

	prev = -1
	for _, proj := range doc.Projects {
		line := "- " + proj.Name + ": " + proj.Description
		if n := strings.Count(got, line); n != 1 {
			t.Fatalf("expected project line %q exactly once, found %d", line, n)
		}
		idx := strings.Index(got, line)
		if idx <= prev {
			t.Fatalf("project %q out of input order", proj.Name)
		}
		prev = idx
	}

	for _, section := range []string{"Education:", "Skills:", "Projects:", "About:"} {
		if !strings.Contains(got, section) {
			t.Fatalf("missing section %q", section)
		}
	}
	if !strings.HasSuffix(got, "politely indicate that information is not available.") {
		t.Fatalf("missing closing instruction")
	}
}

func TestBuildContextLocationFallback(t *testing.T) {
	doc := SeedResume()
	doc.PersonalInfo.Location = ""
	got := BuildContext(doc)
	if !strings.Contains(got, "Location: Not specified\n") {
		t.Fatalf("expected location fallback, got:\n%s", got)
	}
}

func TestServiceContextWithoutResume(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if got := svc.Context(context.Background()); got != NoResumeContext {
		t.Fatalf("expected %q, got %q", NoResumeContext, got)
	}
}
