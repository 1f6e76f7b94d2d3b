package extract

import (
	"reflect"
	"testing"

	"github.com/YSSF8/pluck/internal/model"
)

func TestScan_ReferenceShapes(t *testing.T) {
	tests := []struct {
		name           string
		markup         string
		wantValues     []string
		wantProvenance []model.Provenance
	}{
		{
			name:           "img src",
			markup:         `<img src="a.jpg">`,
			wantValues:     []string{"a.jpg"},
			wantProvenance: []model.Provenance{model.ProvenanceTagAttribute},
		},
		{
			name:           "lazy and poster attributes",
			markup:         `<img data-src="lazy.png"><video poster="frame.jpg" src="clip.mp4"></video>`,
			wantValues:     []string{"lazy.png", "frame.jpg", "clip.mp4"},
			wantProvenance: []model.Provenance{model.ProvenanceTagAttribute, model.ProvenanceTagAttribute, model.ProvenanceTagAttribute},
		},
		{
			name:           "source tag inside picture",
			markup:         `<picture><source src="big.webp"><img src="small.jpg"></picture>`,
			wantValues:     []string{"big.webp", "small.jpg"},
			wantProvenance: []model.Provenance{model.ProvenanceTagAttribute, model.ProvenanceTagAttribute},
		},
		{
			name:           "srcset emitted whole",
			markup:         `<img srcset="a.jpg 1x, b.jpg 2x">`,
			wantValues:     []string{"a.jpg 1x, b.jpg 2x"},
			wantProvenance: []model.Provenance{model.ProvenanceSrcset},
		},
		{
			name:           "anchor with media extension",
			markup:         `<a href="/files/song.mp3">song</a><a href="/about">about</a>`,
			wantValues:     []string{"/files/song.mp3"},
			wantProvenance: []model.Provenance{model.ProvenanceAnchorHref},
		},
		{
			name:           "inline style background image",
			markup:         `<div style="background-image: url('bg.png'); color: red"></div>`,
			wantValues:     []string{"bg.png"},
			wantProvenance: []model.Provenance{model.ProvenanceInlineStyle},
		},
		{
			name:           "style without image extension ignored",
			markup:         `<div style="background-image: url(/api/bg)"></div>`,
			wantValues:     nil,
			wantProvenance: nil,
		},
		{
			name:           "case insensitive tags and attributes",
			markup:         `<IMG SRC="A.JPG"><VIDEO Poster='B.PNG'></VIDEO>`,
			wantValues:     []string{"A.JPG", "B.PNG"},
			wantProvenance: []model.Provenance{model.ProvenanceTagAttribute, model.ProvenanceTagAttribute},
		},
		{
			name:           "single quoted and unquoted values",
			markup:         `<img src='one.jpg'><img src=two.jpg>`,
			wantValues:     []string{"one.jpg", "two.jpg"},
			wantProvenance: []model.Provenance{model.ProvenanceTagAttribute, model.ProvenanceTagAttribute},
		},
		{
			name:           "div src is not a media attribute",
			markup:         `<div src="nope.jpg"></div>`,
			wantValues:     nil,
			wantProvenance: nil,
		},
		{
			name:           "comment content skipped",
			markup:         `<!-- <img src="hidden.jpg"> --><img src="shown.jpg">`,
			wantValues:     []string{"shown.jpg"},
			wantProvenance: []model.Provenance{model.ProvenanceTagAttribute},
		},
		{
			name:           "unterminated tag skipped",
			markup:         `<img src="good.jpg"><img src="bad.jpg`,
			wantValues:     []string{"good.jpg"},
			wantProvenance: []model.Provenance{model.ProvenanceTagAttribute},
		},
		{
			name:           "value with surrounding whitespace trimmed",
			markup:         `<img src="  padded.jpg ">`,
			wantValues:     []string{"padded.jpg"},
			wantProvenance: []model.Provenance{model.ProvenanceTagAttribute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := Scan(tt.markup)

			var values []string
			var provs []model.Provenance
			for _, ref := range refs {
				values = append(values, ref.RawValue)
				provs = append(provs, ref.Provenance)
			}

			if !reflect.DeepEqual(values, tt.wantValues) {
				t.Errorf("values = %v, want %v", values, tt.wantValues)
			}
			if !reflect.DeepEqual(provs, tt.wantProvenance) {
				t.Errorf("provenances = %v, want %v", provs, tt.wantProvenance)
			}
		})
	}
}

func TestScan_TagHints(t *testing.T) {
	refs := Scan(`<img src="a"><audio src="b"></audio><video src="c"></video><source src="d"><a href="e.mp3">e</a>`)

	wantHints := []string{"img", "audio", "video", "source", ""}
	if len(refs) != len(wantHints) {
		t.Fatalf("got %d refs, want %d", len(refs), len(wantHints))
	}
	for i, want := range wantHints {
		if refs[i].TagHint != want {
			t.Errorf("refs[%d].TagHint = %q, want %q", i, refs[i].TagHint, want)
		}
	}
}

func TestScan_Idempotent(t *testing.T) {
	markup := `<html><body>
		<img src="a.jpg" srcset="b.jpg 1x, c.jpg 2x">
		<a href="/v/movie.mp4">movie</a>
		<div style='background-image: url("bg.gif")'></div>
	</body></html>`

	first := Scan(markup)
	second := Scan(markup)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scans differ:\nfirst:  %v\nsecond: %v", first, second)
	}
	if len(first) != 4 {
		t.Errorf("got %d refs, want 4", len(first))
	}
}

func TestStyleBackgroundURL(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  string
		ok    bool
	}{
		{"double quoted", `background-image: url("x.png")`, "x.png", true},
		{"single quoted", `background-image: url('x.webp')`, "x.webp", true},
		{"unquoted", `background-image:url(img/x.gif)`, "img/x.gif", true},
		{"uppercase property", `BACKGROUND-IMAGE: URL(x.jpg)`, "x.jpg", true},
		{"not an image", `background-image: url(movie.mp4)`, "", false},
		{"no background", `color: red`, "", false},
		{"unterminated url", `background-image: url(x.png`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := styleBackgroundURL(tt.style)
			if ok != tt.ok || got != tt.want {
				t.Errorf("styleBackgroundURL(%q) = (%q, %v), want (%q, %v)", tt.style, got, ok, tt.want, tt.ok)
			}
		})
	}
}
