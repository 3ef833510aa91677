package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_LowercasesAndSplits(t *testing.T) {
	tokens := Tokenize("Built Weekly KPI-tracker, for Sales!")

	assert.Equal(t, []string{"built", "weekly", "kpi", "tracker", "sales"}, tokens)
}

func TestTokenize_KeepsTechTermCharacters(t *testing.T) {
	tokens := Tokenize("C++ and C# plus node.js")

	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "c#")
	assert.Contains(t, tokens, "node.js")
}

func TestTokenize_DropsShortTokensAndStopwords(t *testing.T) {
	tokens := Tokenize("a strong team with experience in SQL skills")

	// "a" is too short; "team", "experience", "with", "skills" are stopwords
	assert.Equal(t, []string{"strong", "in", "sql"}, tokens)
}

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \n\t  "))
}

func TestTokenize_Idempotent(t *testing.T) {
	first := Tokenize("Queried CRM and support data in SQL")
	second := Tokenize(strings.Join(first, " "))

	assert.Equal(t, first, second)
}

func TestUnique_PreservesFirstOccurrenceOrder(t *testing.T) {
	out := Unique([]string{"sql", "excel", "sql", "python", "excel"})

	assert.Equal(t, []string{"sql", "excel", "python"}, out)
}

func TestUnique_EmptyInput(t *testing.T) {
	assert.Empty(t, Unique(nil))
}
