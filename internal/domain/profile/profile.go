package profile

import (
	"context"
	"fmt"
	"slices"

	"github.com/3zk9/portfolio/pkg/apperror"
)

type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Period string `json:"period"`
}

type Experience struct {
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Period  string   `json:"period"`
	Bullets []string `json:"bullets"`
}

type Project struct {
	Title string   `json:"title"`
	Blurb string   `json:"blurb"`
	Tags  []string `json:"tags"`
}

// Profile is everything the page displays. Slices are in display order.
type Profile struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Tagline   string `json:"tagline"`
	Location  string `json:"location"`
	Email     string `json:"email"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	ResumeURL string `json:"resume_url"`

	Skills     []string     `json:"skills"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
}

type Repository interface {
	Get(ctx context.Context) (*Profile, error)
}

// Clone returns a deep copy; mutating it never reaches the receiver.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Skills = slices.Clone(p.Skills)
	c.Education = slices.Clone(p.Education)

	c.Experience = make([]Experience, len(p.Experience))
	for i, e := range p.Experience {
		e.Bullets = slices.Clone(e.Bullets)
		c.Experience[i] = e
	}

	c.Projects = make([]Project, len(p.Projects))
	for i, pr := range p.Projects {
		pr.Tags = slices.Clone(pr.Tags)
		c.Projects[i] = pr
	}
	return &c
}

func (p *Profile) Validate() error {
	if p.Name == "" {
		return apperror.NewInvalidInput("profile name is required", nil)
	}
	if p.Role == "" {
		return apperror.NewInvalidInput("profile role is required", nil)
	}
	for i, e := range p.Education {
		if e.School == "" {
			return apperror.NewInvalidInput(fmt.Sprintf("education[%d]: school is required", i), nil)
		}
	}
	for i, e := range p.Experience {
		if e.Company == "" {
			return apperror.NewInvalidInput(fmt.Sprintf("experience[%d]: company is required", i), nil)
		}
	}
	for i, pr := range p.Projects {
		if pr.Title == "" {
			return apperror.NewInvalidInput(fmt.Sprintf("projects[%d]: title is required", i), nil)
		}
	}
	return nil
}
