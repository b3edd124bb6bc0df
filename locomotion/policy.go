package locomotion

// Variant selects a locomotion behavior observed in the tutorial scenes.
// Variants are composable: a controller configured with several runs them in
// a fixed internal order (reactive ground snap, obstacle veto, look-ahead
// probe, proximity trigger).
type Variant uint8

const (
	// VariantGroundSnapOnly keeps the rig glued to the walkable surface
	// beneath it every frame; horizontal moves are committed as-is.
	VariantGroundSnapOnly Variant = iota
	// VariantGroundSnapProbeAhead additionally probes beneath the candidate
	// position before committing a horizontal move.
	VariantGroundSnapProbeAhead
	// VariantObstacleBlocking vetoes horizontal moves whose forward probe
	// hits the obstacle set; it never adjusts height.
	VariantObstacleBlocking
	// VariantProximityTrigger tracks the rig's distance to a target object
	// and drives its material and scale on near/far transitions.
	VariantProximityTrigger
)

// String returns the configuration name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantGroundSnapOnly:
		return "ground_snap"
	case VariantGroundSnapProbeAhead:
		return "ground_snap_probe_ahead"
	case VariantObstacleBlocking:
		return "obstacle_blocking"
	case VariantProximityTrigger:
		return "proximity_trigger"
	}
	return "unknown"
}

// VariantFromString resolves a configuration name to a variant.
func VariantFromString(name string) (Variant, bool) {
	switch name {
	case "ground_snap":
		return VariantGroundSnapOnly, true
	case "ground_snap_probe_ahead":
		return VariantGroundSnapProbeAhead, true
	case "obstacle_blocking":
		return VariantObstacleBlocking, true
	case "proximity_trigger":
		return VariantProximityTrigger, true
	}
	return 0, false
}

// policy is a single per-frame behavior run against the frame context.
type policy interface {
	name() string
	tick(ctx *frameContext)
}

// policiesFor expands the selected variants into the ordered policy chain.
// The obstacle veto always runs before the look-ahead probe so a blocked
// move is never committed.
func policiesFor(variants []Variant) []policy {
	var (
		snap      bool
		ahead     bool
		obstacles bool
		proximity bool
	)
	for _, v := range variants {
		switch v {
		case VariantGroundSnapOnly:
			snap = true
		case VariantGroundSnapProbeAhead:
			snap = true
			ahead = true
		case VariantObstacleBlocking:
			obstacles = true
		case VariantProximityTrigger:
			proximity = true
		}
	}

	var chain []policy
	if snap {
		chain = append(chain, groundSnap{})
	}
	if obstacles {
		chain = append(chain, obstacleBlock{})
	}
	if ahead {
		chain = append(chain, probeAhead{})
	}
	if proximity {
		chain = append(chain, proximityTrigger{})
	}
	return chain
}
