package config

// Default is the built-in engine specification: blood glucose, its rate of
// change, exercise intensity, stress and carbohydrate intake in, insulin
// infusion rate out.
func Default() Config {
	return Config{
		MetricsAddr:     "127.0.0.1:8080",
		TickInterval:    "100ms",
		HistoryCapacity: 1000,
		Resolution:      0.5,
		FallbackOutput:  0,
		Inputs: []VariableConfig{
			{
				Name: "glucose", Min: 60, Max: 200,
				Terms: []TermConfig{
					{Label: "very_low", Shape: shapeTrapezoid, Points: []float64{60, 60, 70, 80}},
					{Label: "low", Shape: shapeTriangle, Points: []float64{70, 85, 100}},
					{Label: "normal", Shape: shapeTriangle, Points: []float64{90, 120, 150}},
					{Label: "high", Shape: shapeTriangle, Points: []float64{140, 170, 190}},
					{Label: "very_high", Shape: shapeTrapezoid, Points: []float64{180, 190, 200, 200}},
				},
			},
			{
				Name: "trend", Min: -60, Max: 60,
				Terms: []TermConfig{
					{Label: "falling_fast", Shape: shapeTrapezoid, Points: []float64{-60, -60, -40, -30}},
					{Label: "falling", Shape: shapeTriangle, Points: []float64{-40, -20, 0}},
					{Label: "steady", Shape: shapeTriangle, Points: []float64{-10, 0, 10}},
					{Label: "rising", Shape: shapeTriangle, Points: []float64{0, 20, 40}},
					{Label: "rising_fast", Shape: shapeTrapezoid, Points: []float64{30, 40, 60, 60}},
				},
			},
			{
				Name: "exercise", Min: 0, Max: 10,
				Terms: []TermConfig{
					{Label: "light", Shape: shapeTriangle, Points: []float64{0, 0, 4}},
					{Label: "moderate", Shape: shapeTriangle, Points: []float64{3, 5, 7}},
					{Label: "intense", Shape: shapeTriangle, Points: []float64{6, 10, 10}},
				},
			},
			{
				Name: "stress", Min: 0, Max: 10,
				Terms: []TermConfig{
					{Label: "low", Shape: shapeTriangle, Points: []float64{0, 0, 4}},
					{Label: "moderate", Shape: shapeTriangle, Points: []float64{3, 5, 7}},
					{Label: "high", Shape: shapeTriangle, Points: []float64{6, 10, 10}},
				},
			},
			{
				Name: "carbs", Min: 0, Max: 150,
				Terms: []TermConfig{
					{Label: "none", Shape: shapeTrapezoid, Points: []float64{0, 0, 5, 15}},
					{Label: "small", Shape: shapeTriangle, Points: []float64{10, 40, 70}},
					{Label: "large", Shape: shapeTrapezoid, Points: []float64{60, 90, 150, 150}},
				},
			},
		},
		Output: VariableConfig{
			Name: "infusion", Min: 0, Max: 100,
			Terms: []TermConfig{
				{Label: "very_low", Shape: shapeTriangle, Points: []float64{0, 0, 20}},
				{Label: "low", Shape: shapeTriangle, Points: []float64{10, 30, 50}},
				{Label: "medium", Shape: shapeTriangle, Points: []float64{40, 60, 80}},
				{Label: "high", Shape: shapeTriangle, Points: []float64{70, 85, 100}},
				{Label: "very_high", Shape: shapeTriangle, Points: []float64{85, 100, 100}},
			},
		},
		Rules: []RuleConfig{
			{
				ID:    "r01",
				Label: "very low glucose, falling fast",
				When: ExprConfig{All: []ExprConfig{
					{Term: "glucose:very_low"},
					{Term: "trend:falling_fast"},
				}},
				Then: "infusion:very_low",
			},
			{
				ID:    "r02",
				Label: "very low glucose, steady",
				When: ExprConfig{All: []ExprConfig{
					{Term: "glucose:very_low"},
					{Term: "trend:steady"},
				}},
				Then: "infusion:very_low",
			},
			{
				ID:    "r03",
				Label: "low glucose, falling or working out",
				When: ExprConfig{All: []ExprConfig{
					{Term: "glucose:low"},
					{Any: []ExprConfig{
						{Term: "trend:falling"},
						{Term: "exercise:intense"},
					}},
				}},
				Then: "infusion:very_low",
			},
			{
				ID:    "r04",
				Label: "normal glucose, steady, light exercise",
				When: ExprConfig{All: []ExprConfig{
					{Term: "glucose:normal"},
					{Term: "trend:steady"},
					{Term: "exercise:light"},
				}},
				Then: "infusion:medium",
			},
			{
				ID:    "r05",
				Label: "normal glucose, steady, intense exercise",
				When: ExprConfig{All: []ExprConfig{
					{Term: "glucose:normal"},
					{Term: "trend:steady"},
					{Term: "exercise:intense"},
				}},
				Then: "infusion:low",
			},
			{
				ID:    "r06",
				Label: "normal glucose after a large meal",
				When: ExprConfig{All: []ExprConfig{
					{Term: "glucose:normal"},
					{Term: "carbs:large"},
					{Term: "exercise:light"},
				}},
				Then: "infusion:high",
			},
			{
				ID:    "r07",
				Label: "normal glucose, rising under stress",
				When: ExprConfig{All: []ExprConfig{
					{Term: "glucose:normal"},
					{Term: "trend:rising"},
					{Term: "stress:high"},
				}},
				Then: "infusion:medium",
			},
			{
				ID:    "r08",
				Label: "high glucose, rising, light exercise",
				When: ExprConfig{All: []ExprConfig{
					{Term: "glucose:high"},
					{Term: "trend:rising"},
					{Term: "exercise:light"},
				}},
				Then: "infusion:high",
			},
			{
				ID:    "r09",
				Label: "high glucose under stress or after a large meal",
				When: ExprConfig{All: []ExprConfig{
					{Term: "glucose:high"},
					{Any: []ExprConfig{
						{Term: "stress:high"},
						{Term: "carbs:large"},
					}},
				}},
				Then: "infusion:high",
			},
			{
				ID:    "r10",
				Label: "very high glucose, rising fast",
				When: ExprConfig{All: []ExprConfig{
					{Term: "glucose:very_high"},
					{Term: "trend:rising_fast"},
				}},
				Then: "infusion:very_high",
			},
		},
	}
}
