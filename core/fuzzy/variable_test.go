package fuzzy_test

import (
	"testing"

	"example.com/pump-service/core/fuzzy"
)

func testVariable(t *testing.T) *fuzzy.Variable {
	t.Helper()
	v, err := fuzzy.NewVariable("glucose", 60, 200, []fuzzy.Term{
		{Label: "low", MF: tri(t, 60, 85, 110)},
		{Label: "normal", MF: tri(t, 90, 120, 150)},
		{Label: "high", MF: tri(t, 140, 200, 200)},
	})
	if err != nil {
		t.Fatalf("NewVariable failed: %v", err)
	}
	return v
}

func TestFuzzify(t *testing.T) {
	v := testVariable(t)
	got := v.Fuzzify(120)
	want := map[string]float64{"low": 0, "normal": 1, "high": 0}
	for label, w := range want {
		if got[label] != w {
			t.Errorf("Fuzzify(120)[%s] = %v, want %v", label, got[label], w)
		}
	}
	got = v.Fuzzify(97.5)
	if got["low"] != 0.5 {
		t.Errorf("Fuzzify(97.5)[low] = %v, want 0.5", got["low"])
	}
	if got["normal"] != 0.25 {
		t.Errorf("Fuzzify(97.5)[normal] = %v, want 0.25", got["normal"])
	}
}

func TestFuzzifyClampsOutOfDomain(t *testing.T) {
	v := testVariable(t)
	below := v.Fuzzify(-500)
	atMin := v.Fuzzify(60)
	for label := range atMin {
		if below[label] != atMin[label] {
			t.Errorf("Fuzzify(-500)[%s] = %v, want %v (clamped to domain min)",
				label, below[label], atMin[label])
		}
	}
	above := v.Fuzzify(10000)
	atMax := v.Fuzzify(200)
	for label := range atMax {
		if above[label] != atMax[label] {
			t.Errorf("Fuzzify(10000)[%s] = %v, want %v (clamped to domain max)",
				label, above[label], atMax[label])
		}
	}
}

func TestClamp(t *testing.T) {
	v := testVariable(t)
	tests := []struct {
		x    float64
		want float64
	}{
		{-10, 60},
		{60, 60},
		{130, 130},
		{200, 200},
		{400, 200},
	}
	for _, tt := range tests {
		if got := v.Clamp(tt.x); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestNewVariableValidation(t *testing.T) {
	mf := tri(t, 0, 1, 2)
	if _, err := fuzzy.NewVariable("", 0, 10, []fuzzy.Term{{Label: "a", MF: mf}}); err == nil {
		t.Error("variable without name accepted, want error")
	}
	if _, err := fuzzy.NewVariable("x", 10, 0, []fuzzy.Term{{Label: "a", MF: mf}}); err == nil {
		t.Error("inverted domain accepted, want error")
	}
	if _, err := fuzzy.NewVariable("x", 0, 10, nil); err == nil {
		t.Error("variable without terms accepted, want error")
	}
	if _, err := fuzzy.NewVariable("x", 0, 10, []fuzzy.Term{
		{Label: "a", MF: mf},
		{Label: "a", MF: mf},
	}); err == nil {
		t.Error("duplicate term labels accepted, want error")
	}
}

func TestTermsOrderPreserved(t *testing.T) {
	v := testVariable(t)
	terms := v.Terms()
	want := []string{"low", "normal", "high"}
	if len(terms) != len(want) {
		t.Fatalf("len(Terms()) = %d, want %d", len(terms), len(want))
	}
	for i, w := range want {
		if terms[i].Label != w {
			t.Errorf("Terms()[%d].Label = %s, want %s", i, terms[i].Label, w)
		}
	}
}
