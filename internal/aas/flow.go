package aas

// DefaultFlow is the production sequence the planner routes through, one
// machine per step.
func DefaultFlow() []string {
	return []string{"Forging", "Turning", "Milling", "Grinding", "Assembly"}
}

// GroupByProcess buckets machines per process category, preserving input
// order inside each bucket.
func GroupByProcess(machines []Machine) map[string][]Machine {
	byProcess := make(map[string][]Machine)
	for _, m := range machines {
		byProcess[m.Process] = append(byProcess[m.Process], m)
	}
	return byProcess
}

// SelectFlow picks one machine per flow step: the first candidate for the
// opening step, then for every later step the haversine-nearest candidate to
// the previously selected machine. A chosen machine leaves its step's pool,
// so a plant offering the same machine for two steps is not picked twice.
// Steps without candidates are skipped.
func SelectFlow(machines []Machine, flow []string) []Machine {
	byProcess := GroupByProcess(machines)

	selected := make([]Machine, 0, len(flow))
	for _, step := range flow {
		candidates := byProcess[step]
		if len(candidates) == 0 {
			continue
		}

		chosen := 0
		if len(selected) > 0 {
			prev := selected[len(selected)-1]
			best := prev.Coord.Haversine(candidates[0].Coord)
			for i := 1; i < len(candidates); i++ {
				if d := prev.Coord.Haversine(candidates[i].Coord); d < best {
					best = d
					chosen = i
				}
			}
		}

		selected = append(selected, candidates[chosen])
		byProcess[step] = append(candidates[:chosen:chosen], candidates[chosen+1:]...)
	}
	return selected
}

// CandidatePools maps each flow step to the names of its running candidates,
// the input shape of the genetic optimizer's assignment mode. Steps without
// candidates are omitted.
func CandidatePools(machines []Machine, flow []string) map[string][]string {
	byProcess := GroupByProcess(machines)
	pools := make(map[string][]string, len(flow))
	for _, step := range flow {
		for _, m := range byProcess[step] {
			pools[step] = append(pools[step], m.Name)
		}
	}
	return pools
}
