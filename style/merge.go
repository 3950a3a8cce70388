package style

// Mergeable is implemented by every widget patch type: Merge overlays the
// argument's present fields on top of the receiver's.
type Mergeable[P any] interface {
	Merge(P) P
}

// CascadeChain lists the patches that contribute to a status record, least
// specific first. Single-axis statuses are just themselves; combined
// statuses on two-axis widgets (checkbox, radio, toggler) cascade through
// the state patch and the interaction patch before the combined patch.
func CascadeChain(st Status) []Status {
	switch st {
	case StatusHoveredChecked:
		return []Status{StatusChecked, StatusHovered, StatusHoveredChecked}
	case StatusDisabledChecked:
		return []Status{StatusChecked, StatusDisabled, StatusDisabledChecked}
	case StatusHoveredSelected:
		return []Status{StatusSelected, StatusHovered, StatusHoveredSelected}
	case StatusHoveredToggled:
		return []Status{StatusToggled, StatusHovered, StatusHoveredToggled}
	case StatusDisabledToggled:
		return []Status{StatusToggled, StatusDisabled, StatusDisabledToggled}
	default:
		return []Status{st}
	}
}

// ResolveStatuses materializes one concrete record per status sub-table that
// was declared in the theme source. Each record starts from the base patch,
// overlays the cascade chain for its status, and resolves defaults at the
// end. Statuses with no declared sub-table get no entry: callers fall back
// to the base.
func ResolveStatuses[P Mergeable[P], R any](base P, patches map[Status]P, resolve func(P) R) map[Status]R {
	if len(patches) == 0 {
		return nil
	}
	out := make(map[Status]R, len(patches))
	for st := range patches {
		merged := base
		for _, part := range CascadeChain(st) {
			if p, ok := patches[part]; ok {
				merged = merged.Merge(p)
			}
		}
		out[st] = resolve(merged)
	}
	return out
}
