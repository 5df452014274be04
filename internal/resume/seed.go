package resume

// SeedResume is the resume document written on first startup when the store
// is empty.
func SeedResume() Resume {
	return Resume{
		PersonalInfo: PersonalInfo{
			Name:     "Aditya Avinash Mane",
			Title:    "Full Stack Developer & MCA Student",
			Email:    "adityamane4650@gmail.com",
			Mobile:   "+91 9673594650",
			Location: "India",
		},
		Education: []Education{
			{
				Degree:      "Master of Computer Applications (MCA)",
				Status:      "Currently in Final Year (2nd Year)",
				Institution: "University Name",
			},
			{
				Degree:      "Bachelor of Computer Applications (BCA)",
				Status:      "Completed",
				Institution: "University Name",
			},
		},
		Skills: SkillSet{
			{Category: "Frontend", Items: []string{"React", "Next.js", "TypeScript", "JavaScript", "HTML", "CSS", "Tailwind CSS"}},
			{Category: "Backend", Items: []string{"Python", "FastAPI", "Node.js", "Nest.js", "Express"}},
			{Category: "Database", Items: []string{"MongoDB", "PostgreSQL", "MySQL"}},
			{Category: "AI/ML", Items: []string{"OpenAI", "OpenRouter API Integration"}},
			{Category: "Tools", Items: []string{"Git", "Docker", "VS Code"}},
			{Category: "Other", Items: []string{"REST APIs", "Responsive Design", "Full Stack Development"}},
		},
		Projects: []Project{
			{
				Name:         "AI-Powered Portfolio",
				Description:  "Interactive portfolio website with AI chat functionality using React, TypeScript, Go, MongoDB, and OpenRouter API",
				Technologies: []string{"React", "TypeScript", "Go", "MongoDB", "OpenRouter"},
			},
			{
				Name:         "Full Stack Web Applications",
				Description:  "Built various web applications using modern tech stack",
				Technologies: []string{"React", "Node.js", "Express", "MongoDB"},
			},
		},
		About: "Aditya is a passionate Full Stack Developer currently pursuing his Master's in Computer Applications. With a strong foundation in both frontend and backend technologies, he specializes in building modern, responsive web applications. He has hands-on experience with AI integration, database management, and creating seamless user experiences.",
	}
}
