package listview

// Selection tracks checked row IDs in the clients view. Membership is
// set-based, not page-based: a selected ID stays selected across filter
// changes and reappears marked whenever the filter shows it again.
type Selection map[string]struct{}

func NewSelection() Selection {
	return make(Selection)
}

func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips one ID in or out of the selection.
func (s Selection) Toggle(id string) {
	if s.Has(id) {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// ToggleAll operates over the currently *filtered* set, not the current
// page: if every visible ID is already selected it clears them all,
// otherwise it selects them all.
func (s Selection) ToggleAll(visible []string) {
	all := true
	for _, id := range visible {
		if !s.Has(id) {
			all = false
			break
		}
	}
	for _, id := range visible {
		if all {
			delete(s, id)
		} else {
			s[id] = struct{}{}
		}
	}
}

// IDs returns the selected IDs restricted to the given visible set, in the
// visible set's order.
func (s Selection) IDs(visible []string) []string {
	out := make([]string, 0, len(s))
	for _, id := range visible {
		if s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

func (s Selection) Len() int { return len(s) }
