package domain

// Step records one arithmetic step of the pipeline: the display formula
// (intermediate values rendered to four decimal places) and the exact
// unrounded result.
type Step struct {
	Formula string  `json:"formula"`
	Result  float64 `json:"result"`
}

// DivisorStep is the divisor-over-angle-factor step. It additionally
// carries the divisor constant so a UI can label which direction rule
// applied.
type DivisorStep struct {
	Divisor float64 `json:"divisor"`
	Formula string  `json:"formula"`
	Result  float64 `json:"result"`
}

// CalculationTrace is the full derivation of one adjusted distance.
// A trace is a plain value: built once per calculation, never mutated.
type CalculationTrace struct {
	Step1            Step        `json:"step1"`
	AngleFactor      float64     `json:"angleFactor"`
	Step2            DivisorStep `json:"step2"`
	Step3            Step        `json:"step3"`
	Step4            Step        `json:"step4"`
	AdjustedDistance float64     `json:"adjustedDistance"`
}
