package persistence

import (
	"context"

	"github.com/3zk9/portfolio/internal/domain/profile"
)

type staticProfileRepo struct {
	source *profile.Profile
}

// NewStaticProfileRepo serves the built-in profile record.
func NewStaticProfileRepo() profile.Repository {
	return &staticProfileRepo{source: builtinProfile}
}

// NewProfileRepoFrom serves p. p is copied, so later changes to it are not seen.
func NewProfileRepoFrom(p *profile.Profile) profile.Repository {
	return &staticProfileRepo{source: p.Clone()}
}

func (r *staticProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.source.Clone(), nil
}

var builtinProfile = &profile.Profile{
	Name:      "Eric Youmans",
	Role:      "Software Engineer",
	Tagline:   "Software Engineer with expertise in Embedded Systems, Machine Learning, and Web Development.",
	Location:  "Washington, DC",
	Email:     "mailto:eric@example.com",
	GitHub:    "https://github.com/username",
	LinkedIn:  "https://www.linkedin.com/in/username/",
	ResumeURL: "/resume.pdf",
	Skills:    []string{"React", "Next.js", "TypeScript", "JavaScript (ES202x)", "Tailwind CSS", "HTML / CSS", "Node.js"},
	Education: []profile.Education{
		{School: "University of Texas, Austin, TX", Degree: "Master of Science in Artificial Intelligence, 4.0 GPA", Period: "Aug. 2024 – Present"},
		{School: "University of Maryland, College Park, MD", Degree: "Bachelor of Science in Computer Science and Economics, 3.31 GPA", Period: "May 2021 – Dec. 2023"},
		{School: "Montgomery College, Rockville, MD", Degree: "Associate of Science in Mathematics, 3.44 GPA", Period: "May 2019 – May 2021"},
	},
	Experience: []profile.Experience{
		{
			Company: "DEVCOM Army Research Laboratory, GTS LLC",
			Role:    "Software Engineer",
			Period:  "Jan. 2024 – Present",
			Bullets: []string{
				"Developed multiple data collection algorithms in C tailored for proprietary hardware, resulting in a 30% increase in data acquisition efficiency.",
				"Engineered machine learning algorithms with TensorFlow, LiteRT, and Python, improving prediction accuracy by ~25%.",
				"Led 4 interns, running weekly stand-ups and providing on-site support.",
				"Collaborated with cross-functional teams to improve efficiency on multi-team projects.",
			},
		},
		{
			Company: "DEVCOM Army Research Laboratory",
			Role:    "Software Engineer Intern",
			Period:  "May 2023 – Dec. 2023",
			Bullets: []string{
				"Developed and deployed Python-based ML algorithms enhancing system functionality.",
				"Executed advanced data cleansing and transformations in Python, improving dataset quality by ~30%.",
				"Designed optimized data collection algorithms in C, improving accuracy by ~40%.",
				"Delivered technical presentations to diverse audiences.",
			},
		},
		{
			Company: "University of Maryland (Research Assistant)",
			Role:    "Research Assistant to Prof. Thomas Drechsel",
			Period:  "Aug. 2022 – May 2023",
			Bullets: []string{
				"Assisted on 'Identifying Monetary Language Shocks: A Natural Language Approach'.",
				"Customized regression R packages (Lasso, Ridge) to analyze implementation details.",
				"Developed Python scripts optimizing PDF parsing and I/O by ~67%.",
			},
		},
	},
	Projects: []profile.Project{
		{
			Title: "Tiny Shakespeare Language Model",
			Blurb: "Developed bigram and multi-head attention models in PyTorch, re-implemented in JAX for functional ML experience.",
			Tags:  []string{"PyTorch", "JAX", "NLP"},
		},
	},
}
