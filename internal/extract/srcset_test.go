package extract

import (
	"reflect"
	"testing"
)

func TestDecomposeSrcset(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "width descriptors",
			value: "small.jpg 480w, large.jpg 1080w",
			want:  []string{"small.jpg", "large.jpg"},
		},
		{
			name:  "density descriptors",
			value: "a.jpg 1x, b.jpg 2x",
			want:  []string{"a.jpg", "b.jpg"},
		},
		{
			name:  "no descriptors",
			value: "one.png, two.png",
			want:  []string{"one.png", "two.png"},
		},
		{
			name:  "duplicates collapse to first appearance",
			value: "a.jpg 1x, b.jpg 2x, a.jpg 3x",
			want:  []string{"a.jpg", "b.jpg"},
		},
		{
			name:  "empty candidates ignored",
			value: " , a.jpg 1x, ,, b.jpg",
			want:  []string{"a.jpg", "b.jpg"},
		},
		{
			name:  "empty value",
			value: "",
			want:  nil,
		},
		{
			name:  "newlines between candidates",
			value: "a.jpg 1x,\n\tb.jpg 2x",
			want:  []string{"a.jpg", "b.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecomposeSrcset(tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecomposeSrcset(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
