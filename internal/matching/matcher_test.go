package matching

import (
	"testing"
	"unicode/utf8"

	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func Test_Match_WhenSkillsEmpty_ShouldReturnZero(t *testing.T) {
	result := Match("Looking for a Python developer", []string{})

	assert.Equal(t, 0, result.Percentage)
	assert.Empty(t, result.MatchedSkills)
}

func Test_Match_WhenDescriptionEmpty_ShouldReturnZero(t *testing.T) {
	result := Match("", []string{"Python", "SQL"})

	assert.Equal(t, 0, result.Percentage)
	assert.Empty(t, result.MatchedSkills)
}

func Test_Match_AllSkillsPresent_ShouldBeFullMatch(t *testing.T) {
	result := Match("Looking for a Python developer with SQL experience", []string{"Python", "SQL"})

	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, []string{"Python", "SQL"}, result.MatchedSkills)
}

func Test_Match_AddingUnmatchedSkill_ShouldDecreasePercentage(t *testing.T) {
	assert.Equal(t, 100, Match("uses Python", []string{"Python"}).Percentage)
	assert.Equal(t, 50, Match("uses Python", []string{"Python", "Rust"}).Percentage)
}

func Test_Match_ShouldRespectWordBoundaries(t *testing.T) {
	description := "Frontend role: JavaScript, TypeScript and C++ tooling"

	result := Match(description, []string{"Java", "C", "C++", "TypeScript"})

	assert.Equal(t, []string{"C++", "TypeScript"}, result.MatchedSkills)
	assert.Equal(t, 50, result.Percentage)
}

func Test_Match_WhenSkillPrefixedWithHash_ShouldMatch(t *testing.T) {
	result := Match("We are hiring: #golang #kubernetes", []string{"Golang", "Kubernetes"})

	assert.Equal(t, 100, result.Percentage)
}

func Test_Match_WhenSkillsJoinedWithPlus_ShouldMatchEach(t *testing.T) {
	result := Match("Stack: Java+Spring, C#/.NET", []string{"Java", "Spring", "C"})

	assert.Equal(t, []string{"Java", "Spring"}, result.MatchedSkills)
	assert.Equal(t, 67, result.Percentage)
}

func Test_Match_WhenSkillHasInvalidUtf8_ShouldDropInvalidBytes(t *testing.T) {
	result := Match("Go and SQL", []string{"Go\xff", "\xfe", "SQL"})

	assert.Equal(t, []string{"Go", "SQL"}, result.MatchedSkills)
	assert.Equal(t, 100, result.Percentage)
	for _, skill := range result.MatchedSkills {
		assert.True(t, utf8.ValidString(skill))
	}
}

func Test_Match_ShouldBeCaseInsensitive(t *testing.T) {
	result := Match("we use POSTGRESQL and react", []string{"PostgreSQL", "React"})

	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, []string{"PostgreSQL", "React"}, result.MatchedSkills)
}

func Test_Match_SymbolSkills_ShouldBeFound(t *testing.T) {
	result := Match("Experience with C#, ASP.NET and Node.js.", []string{"C#", ".NET", "Node.js"})

	assert.Equal(t, 100, result.Percentage)
}

func Test_Match_MultiWordSkill_ShouldIgnoreWhitespaceDifferences(t *testing.T) {
	result := Match("Strong background in machine\n  learning", []string{"Machine Learning"})

	assert.Equal(t, []string{"Machine Learning"}, result.MatchedSkills)
}

func Test_Match_DuplicateSkills_ShouldCountOnce(t *testing.T) {
	result := Match("Go and Docker", []string{"Go", "go", " GO ", "Kubernetes"})

	assert.Equal(t, []string{"Go"}, result.MatchedSkills)
	assert.Equal(t, 50, result.Percentage)
}

func Test_Match_BlankSkills_ShouldBeIgnored(t *testing.T) {
	result := Match("Go developer", []string{"", "   ", "Go"})

	assert.Equal(t, 100, result.Percentage)

	result = Match("Go developer", []string{"", " "})
	assert.Equal(t, 0, result.Percentage)
}

func Test_Match_ShouldKeepSkillListOrder(t *testing.T) {
	result := Match("SQL first, then Python, then Docker", []string{"Docker", "Python", "SQL"})

	assert.Equal(t, []string{"Docker", "Python", "SQL"}, result.MatchedSkills)
}

func Test_Match_ShouldRound(t *testing.T) {
	assert.Equal(t, 33, Match("go", []string{"go", "rust", "java"}).Percentage)
	assert.Equal(t, 67, Match("go rust", []string{"go", "rust", "java"}).Percentage)
}

func Test_Match_PercentageAlwaysInRange(t *testing.T) {
	descriptions := []string{"", "python", "Python SQL Go", "nothing relevant", "c++ c# .net"}
	skillLists := [][]string{
		nil,
		{"Python"},
		{"Python", "SQL", "Go", "Rust"},
		{"", "c++", "C++", "c#"},
	}

	for _, description := range descriptions {
		for _, skills := range skillLists {
			p := Match(description, skills).Percentage
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
		}
	}
}

func Test_Gap_ShouldSplitMatchedAndMissing(t *testing.T) {
	gap := Gap("Python and SQL", []string{"Python", "Go", "SQL", "Docker"})

	assert.Equal(t, []string{"Python", "SQL"}, gap.Matched)
	assert.Equal(t, []string{"Go", "Docker"}, gap.Missing)
	assert.Equal(t, 50, gap.Percentage)
	assert.Equal(t, models.GapLevelModerate, gap.Level)
}

func Test_Gap_Levels(t *testing.T) {
	assert.Equal(t, models.GapLevelStrong, Gap("go rust java", []string{"go", "rust", "java"}).Level)
	assert.Equal(t, models.GapLevelModerate, Gap("go rust", []string{"go", "rust", "java"}).Level)
	assert.Equal(t, models.GapLevelWeak, Gap("go", []string{"go", "rust", "java"}).Level)
	assert.Equal(t, models.GapLevelWeak, Gap("", nil).Level)
}
