package calculator

import (
	"math"
	"testing"

	"StageSentinel/internal/model"
)

func sequence(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i + 1)
	}
	return values
}

func TestPrefixSums(t *testing.T) {
	sums := PrefixSums([]float64{1, 2, 3, 4})
	want := []float64{0, 1, 3, 6, 10}
	if len(sums) != len(want) {
		t.Fatalf("expected %d sums, got %d", len(want), len(sums))
	}
	for i := range want {
		if sums[i] != want[i] {
			t.Errorf("sums[%d]: expected %v, got %v", i, want[i], sums[i])
		}
	}
}

func TestCalculateSMA(t *testing.T) {
	avg, err := CalculateSMA(sequence(30), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 25.5 { // mean of 21..30
		t.Errorf("expected 25.5, got %v", avg)
	}

	if _, err := CalculateSMA(sequence(5), 10); err == nil {
		t.Error("expected error for short input")
	}
	if _, err := CalculateSMA(sequence(5), 0); err == nil {
		t.Error("expected error for non-positive period")
	}
}

func TestCalculateSMASet_ValuesAndTrend(t *testing.T) {
	set := CalculateSMASet(sequence(30), []int{10, 100}, 5, 0)

	ma10 := set[10]
	if !ma10.Sufficient {
		t.Fatal("expected MA10 to be sufficient")
	}
	if ma10.Value != 25.5 {
		t.Errorf("MA10 value: expected 25.5, got %v", ma10.Value)
	}
	if ma10.Prior != 20.5 { // mean of 16..25
		t.Errorf("MA10 prior: expected 20.5, got %v", ma10.Prior)
	}
	if ma10.Trend != model.TrendUp {
		t.Errorf("MA10 trend: expected up, got %s", ma10.Trend)
	}

	if ma100 := set[100]; ma100.Sufficient {
		t.Error("expected MA100 to be insufficient with 30 points")
	}
}

func TestCalculateSMASet_FlatAndEpsilon(t *testing.T) {
	flat := make([]float64, 50)
	for i := range flat {
		flat[i] = 100
	}
	if trend := CalculateSMASet(flat, []int{10}, 5, 0)[10].Trend; trend != model.TrendFlat {
		t.Errorf("flat series: expected flat trend, got %s", trend)
	}

	// A small rise below epsilon still counts as flat.
	rising := sequence(50)
	if trend := CalculateSMASet(rising, []int{10}, 5, 10)[10].Trend; trend != model.TrendFlat {
		t.Errorf("epsilon-dampened rise: expected flat trend, got %s", trend)
	}
	if trend := CalculateSMASet(rising, []int{10}, 5, 0)[10].Trend; trend != model.TrendUp {
		t.Errorf("rise with zero epsilon: expected up trend, got %s", trend)
	}
}

func TestCalculateKAMA(t *testing.T) {
	if _, err := CalculateKAMA(sequence(5), 10, 2, 30); err == nil {
		t.Error("expected error for short input")
	}

	flat := make([]float64, 40)
	for i := range flat {
		flat[i] = 100
	}
	kama, err := CalculateKAMA(flat, 10, 2, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range kama {
		if math.Abs(v-100) > 1e-9 {
			t.Fatalf("flat series: kama[%d] = %v, expected 100", i, v)
		}
	}

	rising, err := CalculateKAMA(sequence(60), 10, 2, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rising[len(rising)-1] <= rising[10] {
		t.Error("expected KAMA to rise over a rising series")
	}
}
