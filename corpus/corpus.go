package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

var (
	// ErrMalformedInput is returned when a record holds a token which is not an integer
	ErrMalformedInput = errors.New("malformed input")
)

// Corpus is the ordered set of integer lists to benchmark, one per input record.
type Corpus [][]int

// Parse reads one whitespace separated list of integers per line. A blank line
// is an empty list.
func Parse(r io.Reader) (Corpus, error) {
	c := Corpus{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		l := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformedInput, line, f)
			}
			l[i] = v
		}
		c = append(c, l)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus with error: %w", err)
	}

	return c, nil
}

// Load opens and parses the corpus file fn.
func Load(fn string) (Corpus, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file %s with error: %w", fn, err)
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("corpus file %s: %w", fn, err)
	}
	glog.Infof("loaded %d lists from corpus file %s", len(c), fn)

	return c, nil
}
