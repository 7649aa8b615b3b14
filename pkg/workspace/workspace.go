// The in-process edit API over the computational core. External
// collaborators (UI, plotting, export) hold the read model and call the
// edit methods; they never mutate domain or strand fields directly.

package workspace

import (
	"go.uber.org/zap"

	"github.com/wolfbio/natube/logger"
	"github.com/wolfbio/natube/pkg/model"
	"github.com/wolfbio/natube/pkg/table"
)

// ReadModel is the current consistent state exposed to collaborators:
// the structure and its derived strand topology. It is replaced
// wholesale on every successful edit.
type ReadModel struct {
	Structure *model.NanotubeStructure
	Trace     *model.Trace
}

// Workspace carries the editable parameters and the last-known-good
// read model. Failed edits leave the read model untouched.
//
// All computation is synchronous and single-threaded: every edit runs
// the full pipeline (closure, directions, tracing, sequence overlay)
// before returning.
type Workspace struct {
	profile     model.Profile
	template    *model.Subunit
	symmetry    int
	targetRatio float64
	mode        model.DirectionMode

	// sequences remembers assigned sequences by strand uuid so they
	// survive retraces that keep the topology, and therefore the
	// uuids, unchanged.
	sequences map[string][]model.Base

	current *ReadModel
}

// New builds a workspace around the given parameters and computes the
// initial read model.
func New(profile model.Profile, template *model.Subunit, symmetry int, targetRatio float64, mode model.DirectionMode) (*Workspace, error) {
	w := &Workspace{
		profile:     profile,
		template:    template.Clone(),
		symmetry:    symmetry,
		targetRatio: targetRatio,
		mode:        mode,
		sequences:   make(map[string][]model.Base),
	}
	rm, err := w.compute(w.template, symmetry, targetRatio, mode)
	if err != nil {
		return nil, err
	}
	w.current = rm
	return w, nil
}

// Default builds the stock 14-domain single-symmetry workspace with
// automatically alternating directions, the shape of the reference
// B-DNA nanotube.
func Default(profile model.Profile) (*Workspace, error) {
	template, err := model.NewSubunit(14)
	if err != nil {
		return nil, err
	}
	for i := range template.Domains {
		template.Domains[i].M = 9
	}
	// 14 domains of 9 characteristic angles close one turn exactly, so
	// the seed target is the subunit sum itself.
	return New(profile, template, 1, 126, model.AutoDirections())
}

// Current returns the last-known-good read model.
func (w *Workspace) Current() *ReadModel {
	return w.current
}

// Profile returns the nucleic acid profile in use.
func (w *Workspace) Profile() model.Profile {
	return w.profile
}

// compute runs the whole pipeline on candidate parameters without
// committing anything.
func (w *Workspace) compute(template *model.Subunit, symmetry int, targetRatio float64, mode model.DirectionMode) (*ReadModel, error) {
	structure, err := model.RecomputeStructure(template, symmetry, targetRatio)
	if err != nil {
		return nil, err
	}
	if err := model.AssignDirections(structure, mode); err != nil {
		return nil, err
	}
	trace, err := model.TraceStrands(structure, w.profile)
	if err != nil {
		return nil, err
	}
	for i := range trace.Strands {
		s := &trace.Strands[i]
		if seq, ok := w.sequences[s.UUID]; ok && len(seq) == len(s.Positions) {
			s.Sequence = seq
		}
	}
	return &ReadModel{Structure: structure, Trace: trace}, nil
}

// commit applies candidate parameters after a successful compute.
func (w *Workspace) commit(template *model.Subunit, symmetry int, targetRatio float64, mode model.DirectionMode, rm *ReadModel) *ReadModel {
	w.template = template
	w.symmetry = symmetry
	w.targetRatio = targetRatio
	w.mode = mode
	w.current = rm
	logger.Debug("structure recomputed",
		zap.Int("domains", len(rm.Structure.Domains)),
		zap.Float64("ratio", rm.Structure.Ratio),
		zap.Bool("closed", rm.Structure.Closed),
		zap.Int("strands", len(rm.Trace.Strands)))
	return rm
}

// edit validates and commits one template mutation.
func (w *Workspace) edit(mutate func(*model.Subunit) error) (*ReadModel, error) {
	candidate := w.template.Clone()
	if err := mutate(candidate); err != nil {
		return nil, err
	}
	rm, err := w.compute(candidate, w.symmetry, w.targetRatio, w.mode)
	if err != nil {
		return nil, err
	}
	return w.commit(candidate, w.symmetry, w.targetRatio, w.mode, rm), nil
}

// SetDomainCount changes C, preserving surviving multipliers.
func (w *Workspace) SetDomainCount(count int) (*ReadModel, error) {
	return w.edit(func(s *model.Subunit) error {
		return s.SetDomainCount(count)
	})
}

// SetMultiplier changes one domain's interior-angle multiplier.
func (w *Workspace) SetMultiplier(index, m int) (*ReadModel, error) {
	return w.edit(func(s *model.Subunit) error {
		return s.SetMultiplier(index, m)
	})
}

// Rotate shifts one domain's helical phase a step up or down.
func (w *Workspace) Rotate(index int, dir model.Direction) (*ReadModel, error) {
	return w.edit(func(s *model.Subunit) error {
		return s.Rotate(index, dir, w.profile.B)
	})
}

// SetSymmetry changes the instantiation count R.
func (w *Workspace) SetSymmetry(symmetry int) (*ReadModel, error) {
	rm, err := w.compute(w.template, symmetry, w.targetRatio, w.mode)
	if err != nil {
		return nil, err
	}
	return w.commit(w.template, symmetry, w.targetRatio, w.mode, rm), nil
}

// SetTargetRatio changes the injected closure constant.
func (w *Workspace) SetTargetRatio(target float64) (*ReadModel, error) {
	rm, err := w.compute(w.template, w.symmetry, target, w.mode)
	if err != nil {
		return nil, err
	}
	return w.commit(w.template, w.symmetry, target, w.mode, rm), nil
}

// SetDirections switches between automatic and manual direction
// assignment. Previously traced strands are invalidated by the retrace.
func (w *Workspace) SetDirections(mode model.DirectionMode) (*ReadModel, error) {
	rm, err := w.compute(w.template, w.symmetry, w.targetRatio, mode)
	if err != nil {
		return nil, err
	}
	return w.commit(w.template, w.symmetry, w.targetRatio, mode, rm), nil
}

// ImportTable replaces the whole domain model from exported rows. The
// imported directions become manual overrides so the table round-trips
// exactly.
func (w *Workspace) ImportTable(rows []table.Row) (*ReadModel, error) {
	template, err := table.ToSubunit(rows)
	if err != nil {
		return nil, err
	}
	overrides := make(map[int]model.Direction, len(rows))
	for _, row := range rows {
		overrides[row.Index] = row.Direction
	}
	mode := model.ManualDirections(overrides)
	rm, err := w.compute(template, w.symmetry, w.targetRatio, mode)
	if err != nil {
		return nil, err
	}
	return w.commit(template, w.symmetry, w.targetRatio, mode, rm), nil
}

// ExportTable flattens the current domain model into ordered rows, one
// per template domain, with the directions currently in effect.
func (w *Workspace) ExportTable() []table.Row {
	count := w.template.Count()
	directions := make([]model.Direction, count)
	for i := 0; i < count; i++ {
		directions[i] = w.current.Structure.Domains[i].Direction
	}
	return table.FromSubunit(w.template, directions)
}

// AssignSequence overlays a nucleotide sequence onto one traced strand,
// located by uuid. The raw text is case-insensitive.
func (w *Workspace) AssignSequence(strandUUID, raw string) (*ReadModel, error) {
	bases, err := model.ParseBases(raw)
	if err != nil {
		return nil, err
	}
	strand := w.findStrand(strandUUID)
	if strand == nil {
		return nil, &model.ParameterError{Field: "strand", Msg: "no strand with uuid " + strandUUID}
	}
	if err := model.AssignSequence(strand, bases); err != nil {
		return nil, err
	}
	w.sequences[strandUUID] = strand.Sequence
	return w.current, nil
}

// DeriveComplement returns the antiparallel complement of a strand's
// assigned sequence.
func (w *Workspace) DeriveComplement(strandUUID string) ([]model.Base, error) {
	strand := w.findStrand(strandUUID)
	if strand == nil {
		return nil, &model.ParameterError{Field: "strand", Msg: "no strand with uuid " + strandUUID}
	}
	return model.DeriveComplement(strand)
}

// ValidatePairing checks two strands' sequences for Watson-Crick
// complementarity.
func (w *Workspace) ValidatePairing(uuidA, uuidB string) error {
	a := w.findStrand(uuidA)
	b := w.findStrand(uuidB)
	if a == nil || b == nil {
		return &model.ParameterError{Field: "strand", Msg: "no such strand"}
	}
	return model.ValidatePairing(a, b)
}

// State exposes the parameters a snapshot needs to rebuild this
// workspace: symmetry, target ratio, direction mode and the table rows.
func (w *Workspace) State() (symmetry int, targetRatio float64, auto bool, rows []table.Row) {
	return w.symmetry, w.targetRatio, w.mode.Auto, w.ExportTable()
}

func (w *Workspace) findStrand(id string) *model.Strand {
	for i := range w.current.Trace.Strands {
		if w.current.Trace.Strands[i].UUID == id {
			return &w.current.Trace.Strands[i]
		}
	}
	return nil
}
