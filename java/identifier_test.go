package java

import "testing"

func TestEscapeReservedWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keyword", "class", "class_"},
		{"literal", "null", "null_"},
		{"boolean literal", "true", "true_"},
		{"not reserved", "value", "value"},
		{"case sensitive", "Class", "Class"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeReservedWord(tt.in); got != tt.want {
				t.Errorf("escapeReservedWord(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "userName", "userName"},
		{"empty", "", "_"},
		{"leading digit", "2fast", "_2fast"},
		{"hyphen", "user-name", "user_name"},
		{"dot", "a.b", "a_b"},
		{"dollar kept", "a$b", "a$b"},
		{"reserved after sanitize", "int", "int_"},
		{"unicode letter kept", "número", "número"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeIdentifier(tt.in); got != tt.want {
				t.Errorf("sanitizeIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
