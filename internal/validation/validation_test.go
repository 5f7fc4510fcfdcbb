package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designarena/internal/domain"
)

func TestBriefRules(t *testing.T) {
	v := New()

	ok := domain.Brief{Niche: "tech", Theme: "neon", Colors: []string{"#0ea5e9", "7c3aed", "#fff"}, Goal: "growth"}
	require.NoError(t, v.Struct(ok))

	bad := domain.Brief{Niche: "t", Theme: "neon", Colors: []string{"#0ea5e9", "blue"}, Goal: ""}
	issues := Issues(v.Struct(bad))

	paths := make(map[string]string, len(issues))
	for _, is := range issues {
		paths[is.Path] = is.Rule
	}
	assert.Equal(t, "min", paths["niche"])
	assert.Equal(t, "required", paths["goal"])
	assert.Equal(t, "hexlike", paths["colors[1]"])
	assert.NotContains(t, paths, "theme")
}

func TestEmptyColors(t *testing.T) {
	issues := Issues(New().Struct(domain.Brief{Niche: "tech", Theme: "neon", Goal: "growth", Colors: []string{}}))
	require.Len(t, issues, 1)
	assert.Equal(t, "colors", issues[0].Path)
	assert.Equal(t, "min", issues[0].Rule)
}

func TestPlanIdeaRules(t *testing.T) {
	plan := domain.Plan{DailyIdeas: []domain.Idea{
		{ProjectName: "ok", DesignType: domain.DesignTypeStory},
		{ProjectName: "x", DesignType: "billboard"},
	}}
	v := New()
	require.NoError(t, v.Struct(plan), "plan structs do not dive into ideas")

	issues := Ideas(v, plan.DailyIdeas)
	require.Len(t, issues, 1)
	assert.Equal(t, "daily_ideas[1].design_type", issues[0].Path)
	assert.Equal(t, "oneof", issues[0].Rule)
}

func TestHexLikeMatchesPaletteForms(t *testing.T) {
	v := New()
	for _, c := range []string{"#fff", "fff", "#0ea5e9", "0EA5E9"} {
		assert.NoError(t, v.Var(c, "hexlike"), c)
	}
	for _, c := range []string{"#ffff", "#12345", "#1234567", "#zzz", ""} {
		assert.Error(t, v.Var(c, "hexlike"), c)
	}
}
