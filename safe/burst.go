package safe

import (
	"fmt"
	"math"
)

// TOPS burst timing constants from the mission specification. TPre is the
// preamble length, TBeam the beam cycle time, TOrb the nominal orbit
// duration (12 days over 175 orbits), all in seconds.
const (
	IWPreambleLength = 2.299849
	IWBeamCycleTime  = 2.758273
	EWPreambleLength = 2.299970
	EWBeamCycleTime  = 3.038376
	OrbitDuration    = 12 * 86400.0 / 175.0
)

// RelativeBurstIDs computes the ESA relative burst identifier for each
// burst azimuth ANX time of a TOPS (IW or EW) acquisition.
func RelativeBurstIDs(anxTimes []float64, mode string, relativeOrbit int) ([]int, error) {
	var tPre, tBeam float64
	switch mode {
	case "IW":
		tPre, tBeam = IWPreambleLength, IWBeamCycleTime
	case "EW":
		tPre, tBeam = EWPreambleLength, EWBeamCycleTime
	default:
		return nil, fmt.Errorf("Burst IDs are only defined for the IW and EW modes, not %q", mode)
	}

	ids := make([]int, len(anxTimes))
	for i, anxTime := range anxTimes {
		orbitDelta := OrbitDuration * float64(relativeOrbit-1)
		ids[i] = 1 + int(math.Floor((anxTime-tPre+orbitDelta)/tBeam))
	}
	return ids, nil
}
