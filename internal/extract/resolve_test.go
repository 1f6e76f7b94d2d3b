package extract

import "testing"

func TestResolve(t *testing.T) {
	const base = "https://site.com/page"

	tests := []struct {
		name string
		raw  string
		base string
		want string
		ok   bool
	}{
		{
			name: "absolute unchanged",
			raw:  "https://cdn.com/x.png",
			base: base,
			want: "https://cdn.com/x.png",
			ok:   true,
		},
		{
			name: "absolute http unchanged",
			raw:  "http://cdn.com/x.png",
			base: base,
			want: "http://cdn.com/x.png",
			ok:   true,
		},
		{
			name: "protocol relative gets https",
			raw:  "//a.com/x.png",
			base: base,
			want: "https://a.com/x.png",
			ok:   true,
		},
		{
			name: "relative joined against base",
			raw:  "img/x.png",
			base: base,
			want: "https://site.com/img/x.png",
			ok:   true,
		},
		{
			name: "root relative",
			raw:  "/media/x.png",
			base: "https://site.com/deep/nested/page",
			want: "https://site.com/media/x.png",
			ok:   true,
		},
		{
			name: "parent relative",
			raw:  "../x.png",
			base: "https://site.com/a/b/page",
			want: "https://site.com/a/x.png",
			ok:   true,
		},
		{
			name: "empty dropped",
			raw:  "",
			base: base,
			ok:   false,
		},
		{
			name: "whitespace only dropped",
			raw:  "   ",
			base: base,
			ok:   false,
		},
		{
			name: "unparseable dropped",
			raw:  "http://[::1]:bad/x.png",
			base: base,
			ok:   false,
		},
		{
			name: "javascript scheme dropped",
			raw:  "javascript:void(0)",
			base: base,
			ok:   false,
		},
		{
			name: "bad base dropped",
			raw:  "x.png",
			base: "://not-a-url",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.raw, tt.base)
			if ok != tt.ok {
				t.Fatalf("Resolve(%q, %q) ok = %v, want %v", tt.raw, tt.base, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.raw, tt.base, got, tt.want)
			}
		})
	}
}
