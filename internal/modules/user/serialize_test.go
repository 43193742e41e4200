package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"O'Brien", "O'Brien"},
		{"a&b@c.com", "a&b@c.com"},
		{`Say "hi"`, `Say "hi"`},
		{"<script>alert(1)</script>", ""},
		{"<b>Lovelace</b>", "Lovelace"},
		{"1 < 2", "1 &lt; 2"},
		{"&lt;script&gt;", "&lt;script&gt;"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitize(tt.in), tt.in)
	}
}
