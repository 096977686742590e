package scheduler

import (
	"fmt"
	"math"
)

// stagnationEpsilon is the tolerance used when comparing historical best
// fitness values for the stagnation rule.
const stagnationEpsilon = 1e-6

// checkGenerationCap implements termination rule (i): the generation
// counter has reached the configured cap.
func checkGenerationCap(gen, cap int) (bool, string) {
	if gen >= cap {
		return true, fmt.Sprintf("generation cap reached: %d/%d", gen, cap)
	}
	return false, ""
}

// checkFitnessRatio implements termination rule (ii): the population has
// converged once mean fitness is within ratioThreshold of the best fitness.
func checkFitnessRatio(fitness []float64, ratioThreshold float64) (bool, string) {
	if len(fitness) == 0 {
		return false, ""
	}
	max := fitness[0]
	sum := 0.0
	for _, f := range fitness {
		sum += f
		if f > max {
			max = f
		}
	}
	if max <= 0 {
		return false, ""
	}
	mean := sum / float64(len(fitness))
	ratio := mean / max
	if ratio >= ratioThreshold {
		return true, fmt.Sprintf("fitness ratio threshold reached: %.4f >= %.4f", ratio, ratioThreshold)
	}
	return false, ""
}

// checkStagnation implements termination rule (iii): the best fitness seen
// has not moved across the last stagnationLimit generations.
func checkStagnation(history []float64, stagnationLimit int) (bool, string) {
	if len(history) < stagnationLimit {
		return false, ""
	}
	recent := history[len(history)-stagnationLimit:]
	first := recent[0]
	for _, f := range recent {
		if math.Abs(f-first) >= stagnationEpsilon {
			return false, ""
		}
	}
	return true, fmt.Sprintf("no improvement in best fitness over %d generations (best: %.4f)", stagnationLimit, first)
}

// ShouldTerminate evaluates the three termination rules of spec §4.7 in
// order and reports the first that fires, together with a human-readable
// reason string prefixed by the rule's roman-numeral label.
func ShouldTerminate(gen int, fitness, history []float64, cfg Config) (bool, string) {
	if done, reason := checkGenerationCap(gen, cfg.GenerationCap); done {
		return true, "(i) " + reason
	}
	if done, reason := checkFitnessRatio(fitness, cfg.RatioThreshold); done {
		return true, "(ii) " + reason
	}
	if done, reason := checkStagnation(history, cfg.StagnationLimit); done {
		return true, "(iii) " + reason
	}
	return false, "continue evolution"
}
