package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"loopsort/src/sort"
)

var (
	ErrBadCount    = errors.New("count is not an integer")
	ErrNonPositive = errors.New("count must be positive")
	ErrBadValue    = errors.New("value is not an integer")
	ErrShortInput  = errors.New("fewer values than the count")
)

const (
	countPrompt  = "How many numbers to sort? "
	valuesPrompt = "What numbers? "

	// the count is untrusted until the values arrive
	maxPrealloc = 1 << 16
)

// Reader reads a count n followed by n integers, separated by any
// whitespace. Tokens after the n-th value are left unread.
type Reader struct {
	sc     *bufio.Scanner
	prompt io.Writer
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

// WithPrompt makes the reader ask for the count and the values on w.
func (r *Reader) WithPrompt(w io.Writer) *Reader {
	r.prompt = w
	return r
}

func (r *Reader) ask(msg string) {
	if r.prompt != nil {
		fmt.Fprint(r.prompt, msg)
	}
}

func (r *Reader) next() (string, bool, error) {
	if r.sc.Scan() {
		return r.sc.Text(), true, nil
	}
	if err := r.sc.Err(); err != nil {
		return "", false, errors.Wrap(err, "read input")
	}
	return "", false, nil
}

func (r *Reader) ReadSequence() (sort.IntArray, error) {
	r.ask(countPrompt)
	tok, ok, err := r.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(ErrBadCount, "no input")
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, errors.Wrapf(ErrBadCount, "%q", tok)
	}
	if n <= 0 {
		return nil, errors.Wrapf(ErrNonPositive, "got %d", n)
	}

	r.ask(valuesPrompt)
	size := n
	if size > maxPrealloc {
		size = maxPrealloc
	}
	a := make(sort.IntArray, 0, size)
	for len(a) < n {
		tok, ok, err = r.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Wrapf(ErrShortInput, "want %d, got %d", n, len(a))
		}
		v, perr := strconv.Atoi(tok)
		if perr != nil {
			return nil, errors.Wrapf(ErrBadValue, "value %d: %q", len(a)+1, tok)
		}
		a = append(a, v)
	}
	return a, nil
}

// Read is NewReader(r).ReadSequence().
func Read(r io.Reader) (sort.IntArray, error) {
	return NewReader(r).ReadSequence()
}

// Format renders a as space-separated integers without a trailing space.
func Format(a sort.IntArray) string {
	var b strings.Builder
	for i, v := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Write prints a space-separated, followed by a newline.
func Write(w io.Writer, a sort.IntArray) error {
	_, err := io.WriteString(w, Format(a)+"\n")
	return errors.Wrap(err, "write output")
}
