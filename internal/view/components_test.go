package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestClasses(t *testing.T) {
	assert.Equal(t, "card p-6", Classes("card", "", "  ", "p-6"))
	assert.Equal(t, "", Classes())
}

func TestMarqueeItems(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "A", "B", "A", "B"}, MarqueeItems([]string{"A", "B"}))
	assert.Empty(t, MarqueeItems(nil))

	in := []string{"Go", "SQL", "gRPC", "Kafka"}
	out := MarqueeItems(in)
	require.Len(t, out, MarqueeRepeat*len(in))
	for rep := range MarqueeRepeat {
		assert.Equal(t, in, out[rep*len(in):(rep+1)*len(in)])
	}
}

func TestMarqueeItemsDoesNotAliasInput(t *testing.T) {
	in := []string{"A"}
	out := MarqueeItems(in)
	out[0] = "Z"
	assert.Equal(t, "A", in[0])
}

func TestMarqueeRendersTripledSequence(t *testing.T) {
	doc := parse(t, Marquee([]string{"A", "B"}))
	spans := findAll(doc, hasClass("tag--marquee"))
	assert.Equal(t, []string{"A", "B", "A", "B", "A", "B"}, texts(spans))
}

func TestAnimationCSSLoopsOnRepetitionBoundary(t *testing.T) {
	css := AnimationCSS(0)
	assert.Contains(t, css, "translateX(-33.333%)")
	assert.Contains(t, css, "marquee 18s linear infinite")
	assert.Contains(t, css, "0%, 100%")
	assert.Contains(t, AnimationCSS(30), "marquee 30s")
}

func TestSection(t *testing.T) {
	doc := parse(t, Section(SectionProps{ID: "skills", Title: "Technical Skills", Eyebrow: "Toolkit"}, g.Text("body")))

	s := findAll(doc, tagged("section"))
	require.Len(t, s, 1)
	id, _ := attr(s[0], "id")
	label, _ := attr(s[0], "aria-label")
	assert.Equal(t, "skills", id)
	assert.Equal(t, "Technical Skills", label)
	assert.Equal(t, []string{"Toolkit"}, texts(findAll(doc, hasClass("eyebrow"))))
	assert.Equal(t, []string{"Technical Skills"}, texts(findAll(doc, tagged("h2"))))
	assert.Contains(t, text(s[0]), "body")
}

func TestSectionWithoutOptionalFields(t *testing.T) {
	doc := parse(t, Section(SectionProps{Title: "Plain"}))

	s := findAll(doc, tagged("section"))
	require.Len(t, s, 1)
	_, hasID := attr(s[0], "id")
	assert.False(t, hasID)
	assert.Empty(t, findAll(doc, hasClass("eyebrow")))
}

func TestCard(t *testing.T) {
	doc := parse(t, Card("card--padded", g.Text("inside")))
	cards := findAll(doc, hasClass("card"))
	require.Len(t, cards, 1)
	class, _ := attr(cards[0], "class")
	assert.Equal(t, "card card--padded", class)
	assert.Equal(t, "inside", text(cards[0]))
}
