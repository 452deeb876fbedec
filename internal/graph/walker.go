package graph

import "sort"

// ContextFilter decides whether a directive with the given (possibly
// empty) context tag participates in a given evaluate() call. A nil
// filter admits every directive.
type ContextFilter func(context string) bool

// Walker orchestrates one evaluate() call: ordering, cascade, alternative
// resolution, requirement checking, and conflict checking over the fields
// an Index and FieldSource agree exist on a record.
type Walker struct {
	Index      *Index
	Source     FieldSource
	Predicates PredicateLookup
	Ignore     IgnoreSet
	Contexts   ContextFilter
}

type candidate struct {
	name Name
	dir  Directive
}

// Evaluate walks record's directive-bearing fields in mandatory-first
// order and returns the first Diagnostic encountered, or nil if every
// field passes.
func (w *Walker) Evaluate(record any) *Diagnostic {
	fields := w.Source.Fields(record)

	known := make(map[Name]bool, len(fields))
	for _, f := range fields {
		known[f] = true
	}

	candidates := make([]candidate, 0, len(fields))
	for _, f := range fields {
		d, ok := w.Index.Lookup(f)
		if !ok {
			continue
		}
		if w.Contexts != nil && !w.Contexts(d.Context) {
			continue
		}
		candidates = append(candidates, candidate{name: f, dir: d})
	}

	// Stable sort: mandatory fields first, ties keep FieldSource order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dir.Mandatory && !candidates[j].dir.Mandatory
	})

	for _, c := range candidates {
		if diag := w.visitTop(record, c.name, c.dir, known); diag != nil {
			return diag
		}
	}
	return nil
}

// visitTop is the per-field decision of spec §4.1.
func (w *Walker) visitTop(record any, f Name, d Directive, known map[Name]bool) *Diagnostic {
	v, present := w.Source.Read(record, f)
	if !present {
		if !d.Mandatory {
			return nil
		}
		return w.resolveAlternatives(record, f, d, known)
	}

	if diag := w.checkPredicate(f, d.Predicate, v); diag != nil {
		return diag
	}

	guard := NewCycleGuard()
	guard.Enter(f)
	if diag := w.checkRequiresList(record, f, d.Requires, known, guard, d.Predicate); diag != nil {
		return diag
	}
	guard.Leave(f)

	return w.checkConflicts(record, f, d, known)
}

// resolveAlternatives implements spec §4.2.
func (w *Walker) resolveAlternatives(record any, f Name, d Directive, known map[Name]bool) *Diagnostic {
	if w.Ignore.Has(Alternatives) {
		return newInvalidField(f, d.Alternatives, nil)
	}
	if w.Ignore.Has(Mandatory) {
		return nil
	}

	for _, a := range d.Alternatives {
		if !known[a] {
			return newDirectiveError(f, a)
		}
		va, present := w.Source.Read(record, a)
		if !present {
			continue
		}

		da, hasDir := w.Index.Lookup(a)
		predicate := d.Predicate
		var requires, conflicts []Name
		if hasDir {
			if da.Predicate != "" {
				predicate = da.Predicate
			}
			requires = da.Requires
			conflicts = da.Conflicts
		}

		guard := NewCycleGuard()
		guard.Enter(a)
		if diag := w.checkRequiresList(record, a, requires, known, guard, predicate); diag != nil {
			continue // candidate fails, try the next one
		}
		guard.Leave(a)

		if diag := w.checkPredicate(a, predicate, va); diag != nil {
			continue
		}
		if diag := w.checkConflictsList(record, a, conflicts, known, predicate); diag != nil {
			continue
		}
		return nil // this alternative satisfies f
	}

	return newInvalidField(f, d.Alternatives, nil)
}

// checkRequiresList implements spec §4.3 for one Requires list.
func (w *Walker) checkRequiresList(record any, parent Name, requires []Name, known map[Name]bool, guard *CycleGuard, parentPredicate string) *Diagnostic {
	if w.Ignore.Has(RequirementsToken) {
		return nil
	}
	for _, r := range requires {
		if !known[r] {
			return newDirectiveError(parent, r)
		}
		if diag := w.checkRequiredChild(record, parent, r, known, guard, parentPredicate); diag != nil {
			return diag
		}
	}
	return nil
}

// checkRequiredChild validates r as a required child of parent (§4.3
// "child form"): alternatives are never considered, and absence is
// always a failure regardless of r's own Mandatory flag.
func (w *Walker) checkRequiredChild(record any, parent, r Name, known map[Name]bool, guard *CycleGuard, parentPredicate string) *Diagnostic {
	if guard.Contains(r) {
		return newCyclicRequirement(guard.CycleFrom(r))
	}

	vr, present := w.Source.Read(record, r)
	if !present {
		return newRequirements(parent, []Name{r})
	}

	dr, hasDir := w.Index.Lookup(r)
	if !hasDir {
		return nil // bare presence satisfies an unannotated required field
	}

	predicate := dr.Predicate
	if predicate == "" {
		predicate = parentPredicate
	}
	if diag := w.checkPredicate(r, predicate, vr); diag != nil {
		req := newRequirements(parent, []Name{r})
		req.Cause = diag.Cause
		return req
	}

	guard.Enter(r)
	defer guard.Leave(r)

	if diag := w.checkRequiresList(record, r, dr.Requires, known, guard, predicate); diag != nil {
		if diag.Kind == CyclicRequirement {
			return diag
		}
		req := newRequirements(parent, append([]Name{r}, diag.Referents...))
		req.Cause = diag.Cause
		return req
	}
	if diag := w.checkConflictsList(record, r, dr.Conflicts, known, predicate); diag != nil {
		return diag
	}
	return nil
}

// checkConflicts implements spec §4.4 for directive d's Conflicts list.
func (w *Walker) checkConflicts(record any, f Name, d Directive, known map[Name]bool) *Diagnostic {
	return w.checkConflictsList(record, f, d.Conflicts, known, d.Predicate)
}

func (w *Walker) checkConflictsList(record any, f Name, conflicts []Name, known map[Name]bool, inheritedPredicate string) *Diagnostic {
	if w.Ignore.Has(Conflicts) {
		return nil
	}
	for _, c := range conflicts {
		if !known[c] {
			return newDirectiveError(f, c)
		}
		vc, present := w.Source.Read(record, c)
		if !present {
			continue // a field that isn't present can't conflict
		}

		dc, hasDir := w.Index.Lookup(c)
		predicate := inheritedPredicate
		if hasDir && dc.Predicate != "" {
			predicate = dc.Predicate
		}

		if diag := w.checkPredicate(c, predicate, vc); diag == nil {
			return newConflictField(f, c)
		}
	}
	return nil
}

func (w *Walker) checkPredicate(f Name, predicateID string, value any) *Diagnostic {
	if predicateID == "" {
		return nil
	}
	fn, ok := w.Predicates(predicateID)
	if !ok {
		return newDirectiveError(f, predicateID)
	}
	if err := fn(value); err != nil {
		return newInvalidField(f, nil, err)
	}
	return nil
}
