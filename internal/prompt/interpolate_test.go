package prompt

import "testing"

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		bindings map[string]string
		want     string
	}{
		{
			name:     "simple substitution",
			text:     "Hello {{name}}!",
			bindings: map[string]string{"name": "Ada"},
			want:     "Hello Ada!",
		},
		{
			name:     "unbound token left intact",
			text:     "Hello {{name}}, your {{role}} awaits",
			bindings: map[string]string{"name": "Ada"},
			want:     "Hello Ada, your {{role}} awaits",
		},
		{
			name:     "no tokens",
			text:     "plain text",
			bindings: map[string]string{"name": "Ada"},
			want:     "plain text",
		},
		{
			name:     "empty bindings leave everything",
			text:     "{{a}} {{b}}",
			bindings: nil,
			want:     "{{a}} {{b}}",
		},
		{
			name:     "substituted text is not re-scanned",
			text:     "{{outer}}",
			bindings: map[string]string{"outer": "{{inner}}", "inner": "never"},
			want:     "{{inner}}",
		},
		{
			name:     "token value containing closing braces",
			text:     "a {{x}} b",
			bindings: map[string]string{"x": "1}}2"},
			want:     "a 1}}2 b",
		},
		{
			name:     "unterminated token is literal",
			text:     "start {{broken",
			bindings: map[string]string{"broken": "x"},
			want:     "start {{broken",
		},
		{
			name:     "adjacent tokens",
			text:     "{{a}}{{b}}{{a}}",
			bindings: map[string]string{"a": "1", "b": "2"},
			want:     "121",
		},
		{
			name:     "empty binding value",
			text:     "[{{gone}}]",
			bindings: map[string]string{"gone": ""},
			want:     "[]",
		},
		{
			name:     "multiline template",
			text:     "Title: {{title}}\n\n{{notes}}\n",
			bindings: map[string]string{"title": "T", "notes": "line1\nline2"},
			want:     "Title: T\n\nline1\nline2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(tt.text, tt.bindings)
			if got != tt.want {
				t.Errorf("Interpolate() = %q, want %q", got, tt.want)
			}
		})
	}
}
