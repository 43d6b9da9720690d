package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3zk9/portfolio/pkg/apperror"
)

func sample() *Profile {
	return &Profile{
		Name:   "Ada",
		Role:   "Engineer",
		Skills: []string{"Go", "SQL"},
		Education: []Education{
			{School: "E1"}, {School: "E2"}, {School: "E3"},
		},
		Experience: []Experience{
			{Company: "Acme", Bullets: []string{"shipped", "led"}},
		},
		Projects: []Project{
			{Title: "P1", Tags: []string{"a", "b"}},
		},
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := sample()
	c := orig.Clone()

	c.Skills[0] = "Rust"
	c.Education[0].School = "changed"
	c.Experience[0].Bullets[0] = "changed"
	c.Projects[0].Tags[1] = "changed"
	c.Name = "Bob"

	assert.Equal(t, "Go", orig.Skills[0])
	assert.Equal(t, "E1", orig.Education[0].School)
	assert.Equal(t, "shipped", orig.Experience[0].Bullets[0])
	assert.Equal(t, "b", orig.Projects[0].Tags[1])
	assert.Equal(t, "Ada", orig.Name)
}

func TestClonePreservesOrder(t *testing.T) {
	c := sample().Clone()
	assert.Equal(t, []string{"E1", "E2", "E3"}, []string{c.Education[0].School, c.Education[1].School, c.Education[2].School})
	assert.Equal(t, []string{"Go", "SQL"}, c.Skills)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, sample().Validate())

	cases := map[string]func(p *Profile){
		"no name":         func(p *Profile) { p.Name = "" },
		"no role":         func(p *Profile) { p.Role = "" },
		"no school":       func(p *Profile) { p.Education[1].School = "" },
		"no company":      func(p *Profile) { p.Experience[0].Company = "" },
		"no project name": func(p *Profile) { p.Projects[0].Title = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := sample()
			mutate(p)
			assert.ErrorIs(t, p.Validate(), apperror.ErrInvalidInput)
		})
	}
}
