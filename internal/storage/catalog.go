package storage

import "github.com/aTrapDeer/portfolio-backend/internal/content"

// DefaultCatalog returns the content shown before the owner adds their own.
func DefaultCatalog() Catalog {
	return Catalog{
		Projects: []content.NewProject{
			{
				Title:        "E-commerce Analytics Dashboard",
				Description:  "A comprehensive analytics dashboard for e-commerce businesses featuring real-time data visualization, sales tracking, and automated reporting. Built with React, D3.js, and Node.js with PostgreSQL database.",
				ImageURL:     content.Text("https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500"),
				Technologies: []string{"React", "Node.js", "PostgreSQL", "D3.js", "AWS"},
				GithubURL:    content.Text("https://github.com"),
				LiveURL:      content.Text("https://example.com"),
				IsFeatured:   true,
				Order:        1,
			},
			{
				Title:        "Real-time Chat Application",
				Description:  "A modern real-time chat application with features like group messaging, file sharing, message reactions, and user presence indicators. Built using React, Socket.io, and Express.",
				ImageURL:     content.Text("https://images.unsplash.com/photo-1611224923853-80b023f02d71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500"),
				Technologies: []string{"React", "Socket.io", "Express", "MongoDB", "Redis"},
				GithubURL:    content.Text("https://github.com"),
				LiveURL:      content.Text("https://example.com"),
				IsFeatured:   true,
				Order:        2,
			},
			{
				Title:        "Task Management App",
				Description:  "A collaborative task management application with drag-and-drop functionality, team workspaces, and real-time collaboration features.",
				Technologies: []string{"React", "TypeScript", "Firebase"},
				GithubURL:    content.Text("https://github.com"),
				LiveURL:      content.Text("https://example.com"),
				Order:        3,
			},
			{
				Title:        "Weather Forecast API",
				Description:  "RESTful API service providing accurate weather forecasts with caching, rate limiting, and comprehensive documentation.",
				Technologies: []string{"Python", "FastAPI", "Redis"},
				GithubURL:    content.Text("https://github.com"),
				LiveURL:      content.Text("https://example.com"),
				Order:        4,
			},
			{
				Title:        "Personal Finance Tracker",
				Description:  "A comprehensive personal finance application with expense tracking, budget planning, and financial goal visualization.",
				Technologies: []string{"Vue.js", "Node.js", "PostgreSQL"},
				GithubURL:    content.Text("https://github.com"),
				LiveURL:      content.Text("https://example.com"),
				Order:        5,
			},
		},
		Experiences: []content.NewExperience{
			{
				Title:       "Senior Full Stack Developer",
				Company:     "TechCorp Solutions",
				StartDate:   "2022",
				EndDate:     content.Text("Present"),
				Description: "Leading development of React-based applications for enterprise clients.",
				Responsibilities: []string{
					"Led development of React-based dashboard serving 10K+ daily users",
					"Architected microservices infrastructure reducing load times by 40%",
					"Mentored junior developers and established coding standards",
				},
				Order: 1,
			},
			{
				Title:       "Full Stack Developer",
				Company:     "StartupXYZ",
				StartDate:   "2020",
				EndDate:     content.Text("2022"),
				Description: "Building scalable web applications for a growing startup.",
				Responsibilities: []string{
					"Built scalable web applications using React, Node.js, and PostgreSQL",
					"Implemented CI/CD pipelines improving deployment efficiency by 60%",
					"Collaborated with design team to create responsive, accessible interfaces",
				},
				Order: 2,
			},
			{
				Title:       "Junior Developer",
				Company:     "Digital Agency Co",
				StartDate:   "2018",
				EndDate:     content.Text("2020"),
				Description: "Developing custom web solutions for various clients.",
				Responsibilities: []string{
					"Developed custom WordPress themes and plugins for client websites",
					"Optimized website performance achieving 95+ PageSpeed scores",
					"Maintained and updated legacy codebases for multiple clients",
				},
				Order: 3,
			},
		},
		Skills: []content.NewSkill{
			{Name: "React.js", Category: content.CategoryFrontend, Percentage: content.Percent(95), Order: 1},
			{Name: "TypeScript", Category: content.CategoryFrontend, Percentage: content.Percent(90), Order: 2},
			{Name: "JavaScript", Category: content.CategoryFrontend, Percentage: content.Percent(98), Order: 3},
			{Name: "CSS/SASS", Category: content.CategoryFrontend, Percentage: content.Percent(92), Order: 4},

			{Name: "Node.js", Category: content.CategoryBackend, Percentage: content.Percent(88), Order: 1},
			{Name: "Python", Category: content.CategoryBackend, Percentage: content.Percent(85), Order: 2},
			{Name: "PostgreSQL", Category: content.CategoryBackend, Percentage: content.Percent(80), Order: 3},
			{Name: "MongoDB", Category: content.CategoryBackend, Percentage: content.Percent(75), Order: 4},

			{Name: "Git/GitHub", Category: content.CategoryTools, Percentage: content.Percent(95), Order: 1},
			{Name: "Docker", Category: content.CategoryTools, Percentage: content.Percent(82), Order: 2},
			{Name: "AWS", Category: content.CategoryTools, Percentage: content.Percent(78), Order: 3},
			{Name: "CI/CD", Category: content.CategoryTools, Percentage: content.Percent(75), Order: 4},
		},
	}
}
