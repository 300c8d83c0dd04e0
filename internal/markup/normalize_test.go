package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// TestNormalize - Markup stripping
// ---------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Linux", "Linux"},
		{"bold and italic", "**bold** *it*", "bold it"},
		{"color span keeps body", ";;blue Blue text;; tail", "Blue text tail"},
		{"escaped star loses the star", `a\*b`, `a\b`},
		{"stray marker dropped", "a ;;b", "a b"},
		{"lone opener keeps its name", "a ;;red b", "a red b"},
		{"unclosed color opener dropped", ";;red a;; b ;;green c", "a b c"},
		{"line break escape untouched", `a\nb`, `a\nb`},
		{"star between markers", ";*;red x", "red x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Windows",
		";;blue Blue text;;",
		";*;red x",
		";;;;a b;;",
		"**;;red **x;;",
		`\**a\*`,
		";; ;; ;;",
		"*;;*;*;red y z",
		"a ;;b ;;c ;;d",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
		assert.LessOrEqual(t, len(once), len(in), "input %q", in)
	}
}

// ---------------------------------------------------------------------------
// TestSortKey - Case-folded keys
// ---------------------------------------------------------------------------

func TestSortKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		keyword string
		mode    KeyMode
		want    string
	}{
		{"markup stripped", "  **Zebra** ", KeyMarkup, "zebra"},
		{"raw keeps markers", "**Zebra**", KeyRaw, "**zebra**"},
		{"case folding", "STRASSE", KeyMarkup, "strasse"},
		{"color body", ";;red Apple;;", KeyMarkup, "apple"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SortKey(tt.keyword, tt.mode))
		})
	}
}

// ---------------------------------------------------------------------------
// TestClassify - Group labels
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		keyword string
		want    Group
	}{
		{"apple", "A"},
		{"Apple", "A"},
		{";;red banana;;", "B"},
		{";;red banana", "B"},
		{";;blue Important", "I"},
		{"**cherry**", "C"},
		{"*date*", "D"},
		{"éclair", "É"},
		{"42 things", CatchAll},
		{".net", CatchAll},
		{";;red", CatchAll},
		{`\*x`, CatchAll},
		{"", CatchAll},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.keyword, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.keyword))
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	assert.Negative(t, Compare("42", "apple", KeyMarkup), "catch-all sorts first")
	assert.Negative(t, Compare("apple", "Banana", KeyMarkup))
	assert.Positive(t, Compare("**zebra**", "apple", KeyMarkup))
	assert.Zero(t, Compare("b", "B", KeyMarkup))
	assert.Zero(t, Compare("**b**", "b", KeyMarkup))
	assert.NotZero(t, Compare("**b**", "b", KeyRaw))
}

// A lone marker keeps its color name in the sort key but not in the
// group, so the entry sorts by that name inside the group of the word
// after it.
func TestCompare_LoneMarker(t *testing.T) {
	t.Parallel()

	c := Collate(";;blue Important", KeyMarkup)
	assert.Equal(t, Collation{Group: "I", Key: "blue important"}, c)

	assert.Positive(t, Compare(";;blue Important", "Blueberry", KeyMarkup), "group I after group B")
	assert.Negative(t, Compare(";;blue Important", "Idea", KeyMarkup), "key blue before idea")
	assert.Zero(t, Compare(";;blue Important;;", "Important", KeyMarkup), "a closed span drops its name")
}

func TestCompareGroups(t *testing.T) {
	t.Parallel()

	assert.Zero(t, CompareGroups(CatchAll, CatchAll))
	assert.Negative(t, CompareGroups(CatchAll, "A"))
	assert.Positive(t, CompareGroups("A", CatchAll))
	assert.Negative(t, CompareGroups("A", "B"))
}
