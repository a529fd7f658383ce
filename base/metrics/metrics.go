package metrics

const (
	ControlTicksH = "The total number of control ticks evaluated"
	ControlTicksN = "pumpservice_control_ticks"

	ControlTickErrorsH = "The total number of control ticks skipped due to errors"
	ControlTickErrorsN = "pumpservice_control_tick_errors"

	ControlNoRuleFiredH = "The total number of control ticks where no rule fired"
	ControlNoRuleFiredN = "pumpservice_control_no_rule_fired"

	ControlInfusionRateH = "The current crisp infusion rate computed by the inference engine"
	ControlInfusionRateN = "pumpservice_control_infusion_rate"
)
