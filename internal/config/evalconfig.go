package config

// evalConfiguration holds the weights and thresholds used by the static
// evaluator.
type evalConfiguration struct {
	EarlyPhase float64 // phase >= EarlyPhase: use the midgame king table
	EndPhase   float64 // phase <= EndPhase: use the endgame king table

	TradeBonusFactor float64 // (own-enemy material) * (1-phase) * this

	ClosePawnBonus      int16
	OpenKingFilePenalty int16
	DoubledPawnPenalty  int16

	// KingSafetyPhaseThreshold gates the king-safety term to phases above
	// this value, per spec.md §4.4.
	KingSafetyPhaseThreshold float64
}

func init() {
	Settings.Eval.EarlyPhase = 0.7
	Settings.Eval.EndPhase = 0.3
	Settings.Eval.TradeBonusFactor = 0.5
	Settings.Eval.ClosePawnBonus = 25
	Settings.Eval.OpenKingFilePenalty = 50
	Settings.Eval.DoubledPawnPenalty = 25
	Settings.Eval.KingSafetyPhaseThreshold = 0.5
}
