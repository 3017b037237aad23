// Package lint validates raw payloads against the chatwire model and
// formats the results for reporting.
package lint

import (
	"fmt"
	"os"
	"strings"

	"github.com/tnglemongrass/chatwire"
)

// Result is the outcome of validating one payload.
type Result struct {
	Source string
	Kind   chatwire.Kind
	Err    error
}

// OK reports whether the payload validated.
func (r Result) OK() bool { return r.Err == nil }

// Check validates a raw payload. When kind is empty the payload's own
// object/role keys decide which model it is checked against.
func Check(source string, data []byte, kind chatwire.Kind) Result {
	if kind == "" {
		detected, err := chatwire.DetectKind(data)
		if err != nil {
			return Result{Source: source, Err: err}
		}
		kind = detected
	}

	var err error
	switch kind {
	case chatwire.KindMessage:
		_, err = chatwire.ParseMessage(data)
	case chatwire.KindCompletion:
		_, err = chatwire.ParseCompletion(data)
	case chatwire.KindCompletionChunk:
		_, err = chatwire.ParseCompletionChunk(data)
	case chatwire.KindEmbedding:
		_, err = chatwire.ParseEmbedding(data)
	default:
		err = fmt.Errorf("unknown payload kind %q", kind)
	}
	return Result{Source: source, Kind: kind, Err: err}
}

// CheckFile reads and validates one payload file.
func CheckFile(path string, kind chatwire.Kind) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Source: path, Err: err}
	}
	return Check(path, data, kind)
}

// TextReport formats results as one line per payload.
func TextReport(results []Result) string {
	var b strings.Builder
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(&b, "ok\t%s\t%s\n", r.Kind, r.Source)
		} else {
			fmt.Fprintf(&b, "FAIL\t%s\t%v\n", r.Source, r.Err)
		}
	}
	return b.String()
}

// MarkdownReport formats results as a markdown document.
func MarkdownReport(results []Result) string {
	var b strings.Builder
	b.WriteString("# chatlint report\n\n")
	failed := 0
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(&b, "- **%s**: valid `%s`\n", r.Source, r.Kind)
		} else {
			failed++
			fmt.Fprintf(&b, "- **%s**: INVALID, %v\n", r.Source, r.Err)
		}
	}
	fmt.Fprintf(&b, "\n%d payload(s), %d invalid.\n", len(results), failed)
	return b.String()
}
