package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wolfbio/natube/pkg/model"
)

// Sequence contract: one line per strand, "<strand_uuid>\t<bases>", with
// bases restricted to {A,T,C,G}. Import is case-insensitive; bases are
// canonicalized to uppercase.

// WriteSequences emits the assigned sequence of every strand that has
// one. Strands without a sequence are skipped.
func WriteSequences(w io.Writer, strands []model.Strand) error {
	for _, s := range strands {
		if s.Sequence == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", s.UUID, model.BasesString(s.Sequence)); err != nil {
			return err
		}
	}
	return nil
}

// ReadSequences parses strand sequence lines into a uuid -> bases map.
func ReadSequences(r io.Reader) (map[string][]model.Base, error) {
	out := make(map[string][]model.Base)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		id, raw, ok := strings.Cut(text, "\t")
		if !ok || id == "" {
			return nil, &model.ParameterError{Field: "sequence", Msg: fmt.Sprintf("malformed line %d", line)}
		}
		bases, err := model.ParseBases(raw)
		if err != nil {
			return nil, err
		}
		out[id] = bases
	}
	return out, scanner.Err()
}
