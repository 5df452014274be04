package resume

import (
	"fmt"
	"strings"
)

// NoResumeContext is the system prompt used when no resume document exists.
const NoResumeContext = "No resume data available."

// BuildContext renders the resume into the system prompt handed to the
// language model. It is deterministic: the same resume always yields the
// same string, sections in fixed order.
func BuildContext(r Resume) string {
	name := r.PersonalInfo.Name
	if name == "" {
		name = "the candidate"
	}
	location := r.PersonalInfo.Location
	if location == "" {
		location = "Not specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an AI assistant for %s's portfolio website. Answer questions about their background, skills, and experience professionally and concisely.\n\n", name)
	fmt.Fprintf(&b, "Name: %s\n", r.PersonalInfo.Name)
	fmt.Fprintf(&b, "Title: %s\n", r.PersonalInfo.Title)
	fmt.Fprintf(&b, "Email: %s\n", r.PersonalInfo.Email)
	fmt.Fprintf(&b, "Mobile: %s\n", r.PersonalInfo.Mobile)
	fmt.Fprintf(&b, "Location: %s\n", location)

	b.WriteString("\nEducation:\n")
	for _, edu := range r.Education {
		fmt.Fprintf(&b, "- %s - %s\n", edu.Degree, edu.Status)
	}

	b.WriteString("\nSkills:\n")
	for _, group := range r.Skills {
		fmt.Fprintf(&b, "- %s: %s\n", group.Category, strings.Join(group.Items, ", "))
	}

	b.WriteString("\nProjects:\n")
	for _, proj := range r.Projects {
		fmt.Fprintf(&b, "- %s: %s\n", proj.Name, proj.Description)
	}

	fmt.Fprintf(&b, "\nAbout:\n%s\n", r.About)
	b.WriteString("\nAnswer questions naturally and professionally. If asked about something not mentioned here, politely indicate that information is not available.")

	return b.String()
}
