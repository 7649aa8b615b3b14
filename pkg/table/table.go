// Tabular import/export contracts between the core and the excluded
// presentation/export layer. One row per domain of a single subunit;
// symmetry instances are implied, never written.

package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/wolfbio/natube/pkg/model"
)

// Row is one domain's parameters as exchanged with the outside.
type Row struct {
	Index      int
	Multiplier int
	Direction  model.Direction
	Offset     int
}

var header = []string{"domain_index", "multiplier", "direction", "offset"}

// FromSubunit flattens the template subunit into ordered rows.
func FromSubunit(s *model.Subunit, directions []model.Direction) []Row {
	rows := make([]Row, len(s.Domains))
	for i, d := range s.Domains {
		dir := d.Direction
		if directions != nil && i < len(directions) {
			dir = directions[i]
		}
		rows[i] = Row{Index: i, Multiplier: d.M, Direction: dir, Offset: d.Offset}
	}
	return rows
}

// ToSubunit rebuilds a template subunit from ordered rows. Exporting
// then importing must reproduce an identical domain model, so rows are
// required to be contiguous and 0-indexed.
func ToSubunit(rows []Row) (*model.Subunit, error) {
	if len(rows) == 0 {
		return nil, &model.ParameterError{Field: "rows", Msg: "domain table is empty"}
	}
	s := &model.Subunit{Domains: make([]model.Domain, len(rows))}
	for i, row := range rows {
		if row.Index != i {
			return nil, &model.ParameterError{Field: "domain_index", Msg: fmt.Sprintf("row %d carries index %d", i, row.Index)}
		}
		if row.Multiplier < 1 {
			return nil, &model.ParameterError{Field: "multiplier", Msg: "multiplier must be at least 1"}
		}
		s.Domains[i] = model.Domain{
			Index:     i,
			M:         row.Multiplier,
			Direction: row.Direction,
			Offset:    row.Offset,
		}
	}
	return s, nil
}

// Write encodes rows as CSV with a fixed header.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Index),
			strconv.Itoa(row.Multiplier),
			row.Direction.String(),
			strconv.Itoa(row.Offset),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read decodes a CSV domain table written by Write.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 || len(records[0]) != len(header) {
		return nil, &model.ParameterError{Field: "table", Msg: "missing or malformed header row"}
	}
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		index, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, &model.ParameterError{Field: "domain_index", Msg: err.Error()}
		}
		m, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, &model.ParameterError{Field: "multiplier", Msg: err.Error()}
		}
		dir, err := model.ParseDirection(record[2])
		if err != nil {
			return nil, err
		}
		offset, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, &model.ParameterError{Field: "offset", Msg: err.Error()}
		}
		rows = append(rows, Row{Index: index, Multiplier: m, Direction: dir, Offset: offset})
	}
	return rows, nil
}
