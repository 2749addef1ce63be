package markup

import (
	"reflect"
	"testing"
)

func TestExtractHashtags(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"two tags", "hello #world and #world2", []string{"#world", "#world2"}},
		{"no tags", "no tags", nil},
		{"duplicates kept", "#x twice #x", []string{"#x", "#x"}},
		{"adjacent text", "end#tag", []string{"#tag"}},
		{"bare hash ignored", "just a # sign", nil},
		{"empty", "", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractHashtags(tc.content)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ExtractHashtags(%q) = %v, want %v", tc.content, got, tc.want)
			}
		})
	}
}

func TestFormatContent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"hashtag",
			"hello #world",
			`hello <a href="/tags/world">#world</a>`,
		},
		{
			"url",
			"see https://example.com/page",
			`see <a href="https://example.com/page" target="_blank">https://example.com/page</a>`,
		},
		{
			"hashtag inside url not converted",
			"read https://example.com/doc#section now",
			`read <a href="https://example.com/doc#section" target="_blank">https://example.com/doc#section</a> now`,
		},
		{
			"mixed",
			"#go at http://golang.org rocks",
			`<a href="/tags/go">#go</a> at <a href="http://golang.org" target="_blank">http://golang.org</a> rocks`,
		},
		{
			"plain text untouched",
			"nothing special here",
			"nothing special here",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatContent(tc.content); got != tc.want {
				t.Fatalf("FormatContent(%q)\n got: %s\nwant: %s", tc.content, got, tc.want)
			}
		})
	}
}
