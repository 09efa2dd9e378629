package diff

import (
	"errors"
	"strings"
	"testing"
)

const sampleDiff = `diff --git a/cmd/main.go b/cmd/main.go
index 1111111..2222222 100644
--- a/cmd/main.go
+++ b/cmd/main.go
@@ -1,3 +1,4 @@
 package main
+
 func main() {}
diff --git a/internal/server/server.go b/internal/server/server.go
index 3333333..4444444 100644
--- a/internal/server/server.go
+++ b/internal/server/server.go
@@ -10,6 +10,7 @@ func Start() {
 	listen()
+	serve()
 }
diff --git a/old/name.go b/new/name.go
similarity index 90%
rename from old/name.go
rename to new/name.go
`

func TestFilterByPath(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		wantContains  string
		wantAbsent    string
		expectError   bool
	}{
		{
			name:         "first file",
			path:         "cmd/main.go",
			wantContains: "diff --git a/cmd/main.go b/cmd/main.go",
			wantAbsent:   "internal/server/server.go",
		},
		{
			name:         "middle file",
			path:         "internal/server/server.go",
			wantContains: "+	serve()",
			wantAbsent:   "cmd/main.go",
		},
		{
			name:         "leading ./ is normalized",
			path:         "./cmd/main.go",
			wantContains: "func main() {}",
			wantAbsent:   "server.go",
		},
		{
			name:         "rename matches new path",
			path:         "new/name.go",
			wantContains: "rename to new/name.go",
			wantAbsent:   "cmd/main.go",
		},
		{
			name:         "rename matches old path",
			path:         "old/name.go",
			wantContains: "rename from old/name.go",
			wantAbsent:   "server.go",
		},
		{
			name:        "unknown path",
			path:        "does/not/exist.go",
			expectError: true,
		},
		{
			name:        "empty path",
			path:        "",
			expectError: true,
		},
		{
			name:        "substring of a real path does not match",
			path:        "main.go",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterByPath(sampleDiff, tt.path)
			if tt.expectError {
				if err == nil {
					t.Fatalf("FilterByPath(%q) expected error, got:\n%s", tt.path, got)
				}
				if !errors.Is(err, ErrFileNotInDiff) {
					t.Errorf("FilterByPath(%q) error = %v, want ErrFileNotInDiff", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FilterByPath(%q) unexpected error: %v", tt.path, err)
			}
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("FilterByPath(%q) missing %q:\n%s", tt.path, tt.wantContains, got)
			}
			if tt.wantAbsent != "" && strings.Contains(got, tt.wantAbsent) {
				t.Errorf("FilterByPath(%q) should not contain %q:\n%s", tt.path, tt.wantAbsent, got)
			}
		})
	}
}

// The filtered output must be a strict subset of the unrestricted diff.
func TestFilterByPathSubset(t *testing.T) {
	for _, path := range []string{"cmd/main.go", "internal/server/server.go"} {
		got, err := FilterByPath(sampleDiff, path)
		if err != nil {
			t.Fatalf("FilterByPath(%q) unexpected error: %v", path, err)
		}
		for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
			if !strings.Contains(sampleDiff, line) {
				t.Errorf("line %q not present in source diff", line)
			}
		}
		if len(got) >= len(sampleDiff) {
			t.Errorf("filtered diff for %q is not smaller than the full diff", path)
		}
	}
}
