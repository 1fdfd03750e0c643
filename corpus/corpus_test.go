package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect Corpus
		fail   bool
	}{
		{
			name:   "empty input",
			input:  "",
			expect: Corpus{},
		},
		{
			name:   "three records",
			input:  "5 3 1\n4 4\n9\n",
			expect: Corpus{{5, 3, 1}, {4, 4}, {9}},
		},
		{
			name:   "no trailing newline and extra spaces",
			input:  "  -2\t7   0\n1",
			expect: Corpus{{-2, 7, 0}, {1}},
		},
		{
			name:   "blank line is an empty list",
			input:  "1 2\n\n3\n",
			expect: Corpus{{1, 2}, {}, {3}},
		},
		{
			name:  "not an integer",
			input: "1 2\n3 x 4\n",
			fail:  true,
		},
		{
			name:  "float",
			input: "1.5\n",
			fail:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil && !tt.fail {
				t.Fatalf("supposed to succeed but fail with error: %+v", err)
			}
			if err == nil && tt.fail {
				t.Fatalf("supposed to fail but succeeded")
			}
			if tt.fail {
				if !errors.Is(err, ErrMalformedInput) {
					t.Fatalf("expected ErrMalformedInput, got: %+v", err)
				}
				return
			}
			if diff := deep.Equal(tt.expect, got); diff != nil {
				t.Errorf("%+v", diff)
			}
		})
	}
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse(strings.NewReader("1\n2\nthree\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected error pointing at line 3, got: %+v", err)
	}
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(fn, []byte("3 2 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(fn)
	if err != nil {
		t.Fatalf("supposed to succeed but fail with error: %+v", err)
	}
	if diff := deep.Equal(Corpus{{3, 2, 1}}, c); diff != nil {
		t.Errorf("%+v", diff)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("supposed to fail but succeeded")
	}
}
