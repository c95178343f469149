package blob

import "testing"

func TestValidateKey(t *testing.T) {
	cases := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"simple", "abc123def456.txt", false},
		{"no extension", "abc123def456", false},
		{"empty", "", true},
		{"dot", ".", true},
		{"traversal", "../etc/passwd", true},
		{"nested traversal", "a/../../etc/passwd", true},
		{"absolute", "/etc/passwd", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateKey(tc.key)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for key %q", tc.key)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for key %q: %v", tc.key, err)
			}
		})
	}
}
