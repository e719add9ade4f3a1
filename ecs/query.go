package ecs

type membership interface {
	has(id entityID) bool
}

// intersect returns the ids in base that every other set also holds.
func intersect(base []entityID, others ...membership) []entityID {
	out := make([]entityID, 0, len(base))
outer:
	for _, id := range base {
		for _, o := range others {
			if !o.has(id) {
				continue outer
			}
		}
		out = append(out, id)
	}
	return out
}
