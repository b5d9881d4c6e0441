package vehicle

import "github.com/driftline/driftline/component"

// InterpolateTorque looks up engine torque at rpm by linear interpolation
// over the ordered curve. RPM outside the sampled range clamps to the
// nearest endpoint; idle sits below the first sample and the engine must
// still pull away from it.
func InterpolateTorque(curve []component.TorqueSample, rpm float64) float64 {
	if len(curve) == 0 {
		return 0
	}
	if rpm <= curve[0].RPM {
		return curve[0].Torque
	}
	if rpm >= curve[len(curve)-1].RPM {
		return curve[len(curve)-1].Torque
	}
	for i := 0; i < len(curve)-1; i++ {
		lo := curve[i]
		hi := curve[i+1]
		if rpm <= hi.RPM {
			span := hi.RPM - lo.RPM
			if span == 0 {
				return lo.Torque
			}
			return lo.Torque + (hi.Torque-lo.Torque)*(rpm-lo.RPM)/span
		}
	}
	return curve[len(curve)-1].Torque
}
