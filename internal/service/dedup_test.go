package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kindlyrss/internal/model"
	"kindlyrss/internal/service/feedparser"
)

func link(s string) *string {
	return &s
}

func TestKnownArticles_Contains(t *testing.T) {
	known := newKnownArticles([]model.Article{
		{GUID: "g1", Link: link("https://a.example/1")},
		{GUID: "https://a.example/2", Link: link("https://a.example/2")},
		{GUID: "g3"},
	})

	cases := []struct {
		name string
		item feedparser.ParsedItem
		want bool
	}{
		{"known guid", feedparser.ParsedItem{GUID: "g1"}, true},
		{"known guid without link", feedparser.ParsedItem{GUID: "g3", Link: "https://other.example"}, true},
		{"new guid, link of guid-keyed article", feedparser.ParsedItem{GUID: "g9", Link: "https://a.example/1"}, false},
		{"new guid, link of link-keyed article", feedparser.ParsedItem{GUID: "g9", Link: "https://a.example/2"}, true},
		{"no guid, stored link", feedparser.ParsedItem{Link: "https://a.example/1"}, true},
		{"no guid, link equals stored guid", feedparser.ParsedItem{Link: "g3"}, true},
		{"no guid, new link", feedparser.ParsedItem{Link: "https://a.example/9"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, known.contains(tc.item))
		})
	}
}

func TestKnownArticles_NewItems(t *testing.T) {
	known := newKnownArticles([]model.Article{{GUID: "old"}})

	items := known.newItems(1, []feedparser.ParsedItem{
		{Title: "old", GUID: "old"},
		{Title: "first", Link: "https://a.example/x"},
		{Title: "dropped"},
		{Title: "repeat", GUID: "https://a.example/x"},
		{Title: "second", GUID: "g2"},
	})

	require.Len(t, items, 2)
	require.Equal(t, "first", items[0].Title)
	require.Equal(t, "https://a.example/x", items[0].GUID)
	require.Equal(t, "second", items[1].Title)
}

func TestKnownArticles_EmptySnapshot(t *testing.T) {
	known := newKnownArticles(nil)
	items := known.newItems(1, []feedparser.ParsedItem{{GUID: "a"}, {GUID: "b"}})
	require.Len(t, items, 2)
}
