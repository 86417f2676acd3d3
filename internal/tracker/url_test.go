package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithScheme(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"https preserved", "https://x.test/1", "https://x.test/1"},
		{"http preserved", "http://x.test/1", "http://x.test/1"},
		{"bare domain gets https", "x.test/jobs", "https://x.test/jobs"},
		{"www gets https", "www.x.test", "https://www.x.test"},
		{"casing preserved", "X.Test/Jobs/42", "https://X.Test/Jobs/42"},
		{"surrounding whitespace trimmed", "  x.test  ", "https://x.test"},
		{"empty stays empty", "", ""},
		{"whitespace only stays empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithScheme(tt.in))
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "https://X.Test/Jobs", "https://x.test/jobs"},
		{"strips trailing slash", "https://x.test/jobs/", "https://x.test/jobs"},
		{"strips repeated trailing slashes", "https://x.test/jobs///", "https://x.test/jobs"},
		{"adds scheme before comparing", "X.Test/Jobs/", "https://x.test/jobs"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.in))
		})
	}
}

func TestNormalizeURLEquivalence(t *testing.T) {
	// Variants of one posting must collapse to a single key.
	variants := []string{
		"https://x.test/jobs/42",
		"https://X.TEST/jobs/42",
		"x.test/jobs/42",
		"https://x.test/jobs/42/",
	}
	want := NormalizeURL(variants[0])
	for _, v := range variants {
		assert.Equal(t, want, NormalizeURL(v), "variant %q", v)
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantTitle string
		wantURL   string
		wantOK    bool
	}{
		{
			name:    "bare url",
			in:      "https://x.test/jobs/1",
			wantURL: "https://x.test/jobs/1",
			wantOK:  true,
		},
		{
			name:      "explicit title and url",
			in:        "Eng Role|https://x.test/jobs/1",
			wantTitle: "Eng Role",
			wantURL:   "https://x.test/jobs/1",
			wantOK:    true,
		},
		{
			name:      "freeform text before url becomes title",
			in:        "Backend role at Acme https://x.test/jobs/2",
			wantTitle: "Backend role at Acme",
			wantURL:   "https://x.test/jobs/2",
			wantOK:    true,
		},
		{
			name:      "explicit title wins over preceding text",
			in:        "Acme|posted today https://x.test/jobs/3",
			wantTitle: "Acme",
			wantURL:   "https://x.test/jobs/3",
			wantOK:    true,
		},
		{
			name:      "bare domain is found",
			in:        "check x.test/jobs/4 later",
			wantTitle: "check",
			wantURL:   "x.test/jobs/4",
			wantOK:    true,
		},
		{
			name:      "title separated by dash",
			in:        "Staff SRE - https://x.test/jobs/5",
			wantTitle: "Staff SRE",
			wantURL:   "https://x.test/jobs/5",
			wantOK:    true,
		},
		{
			name:      "trailing punctuation stripped",
			in:        "see https://x.test/jobs/6.",
			wantTitle: "see",
			wantURL:   "https://x.test/jobs/6",
			wantOK:    true,
		},
		{name: "no url", in: "call the recruiter back"},
		{name: "empty entry", in: ""},
		{name: "whitespace entry", in: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, url, ok := parseEntry(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantTitle, title)
				assert.Equal(t, tt.wantURL, url)
			}
		})
	}
}
