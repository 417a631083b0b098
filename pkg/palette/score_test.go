package palette

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreEntryBonusesSum(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		entry Entry
		query string
		fuzzy bool
		want  int
	}{
		{
			name:  "exact title match stacks equals prefix and contains",
			entry: Entry{Title: "Open Tab"},
			query: "Open Tab",
			want:  225,
		},
		{
			name:  "exact match with fuzzy adds the subsequence bonus",
			entry: Entry{Title: "Open Tab"},
			query: "open tab",
			fuzzy: true,
			want:  235,
		},
		{
			name:  "prefix stacks with contains",
			entry: Entry{Title: "Open Tab"},
			query: "open",
			want:  125,
		},
		{
			name:  "contains only",
			entry: Entry{Title: "Open Tab"},
			query: "tab",
			want:  50,
		},
		{
			name:  "subtitle contains",
			entry: Entry{Title: "New Window", Subtitle: "open a tab group"},
			query: "tab",
			want:  30,
		},
		{
			name:  "fuzzy subsequence only",
			entry: Entry{Title: "Close All Tabs"},
			query: "cat",
			fuzzy: true,
			want:  10,
		},
		{
			name:  "fuzzy disabled drops the subsequence bonus",
			entry: Entry{Title: "Close All Tabs"},
			query: "cat",
			fuzzy: false,
			want:  0,
		},
		{
			name:  "no match scores zero",
			entry: Entry{Title: "New Window"},
			query: "tab",
			want:  0,
		},
		{
			name:  "display overrides are excluded from scoring",
			entry: Entry{Title: "New Window", DisplayTitle: "tab tab tab"},
			query: "tab",
			want:  0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, scoreEntry(tc.entry, tc.query, tc.fuzzy))
		})
	}
}

func TestScoreEntryCaseInsensitive(t *testing.T) {
	t.Parallel()

	entry := Entry{Title: "OPEN TAB"}
	require.Equal(t, scoreEntry(entry, "open tab", false), scoreEntry(entry, "OPEN TAB", false))
	require.Equal(t, 225, scoreEntry(entry, "oPeN tAb", false))
}
