package nscp

import (
	"math"
	"testing"
)

func TestEc(t *testing.T) {
	tests := []struct {
		fc      float64
		want    float64
		wantErr bool
	}{
		{28, 4700 * math.Sqrt(28), false},
		{21, 4700 * math.Sqrt(21), false},
		{0, 0, true},
		{-5, 0, true},
		{math.NaN(), 0, true},
		{math.Inf(1), 0, true},
	}
	for _, tt := range tests {
		got, err := Ec(tt.fc)
		if (err != nil) != tt.wantErr {
			t.Errorf("Ec(%v) error = %v, wantErr %v", tt.fc, err, tt.wantErr)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Ec(%v) = %v, want %v", tt.fc, got, tt.want)
		}
	}
}

func TestParseLoadType(t *testing.T) {
	tests := []struct {
		in      string
		want    LoadType
		wantErr bool
	}{
		{"", Dead, false},
		{"D", Dead, false},
		{"Lr", Roof, false},
		{"E", Earthquake, false},
		{"X", "", true},
		{"lr", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLoadType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLoadType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLoadType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFactor(t *testing.T) {
	combo, ok := FindCombination("4", LoadCombinations)
	if !ok {
		t.Fatal("combination 4 not found")
	}
	want := map[LoadType]float64{Dead: 1.2, Live: 1.0, Roof: 0.5, Wind: 1.0, Earthquake: 0, Rain: 0.5}
	for lt, f := range want {
		if got := combo.Factor(lt); got != f {
			t.Errorf("Factor(%s) = %v, want %v", lt, got, f)
		}
	}
	if got := combo.Factor("X"); got != 0 {
		t.Errorf("Factor(unknown) = %v, want 0", got)
	}
	if _, ok := FindCombination("99", LoadCombinations); ok {
		t.Error("unexpected combination 99")
	}
}

func TestApply(t *testing.T) {
	combo := SimplifiedCombinations[1] // 1.2D + 1.6L
	got, err := combo.Apply(map[LoadType][]float64{
		Dead: {10, 0, -5},
		Live: {0, 2, 5},
		Wind: {100, 100, 100},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{12, 3.2, 2}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Apply()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := combo.Apply(map[LoadType][]float64{Dead: {1}, Live: {1, 2}}); err == nil {
		t.Error("expected length mismatch error")
	}
	if out, err := combo.Apply(nil); err != nil || out != nil {
		t.Errorf("Apply(nil) = %v, %v", out, err)
	}
}

func TestGoverning(t *testing.T) {
	values := []float64{1.5, -4, 3}
	got, combo := Governing(values, LoadCombinations[:3])
	if got != -4 {
		t.Errorf("Governing() value = %v, want -4", got)
	}
	if combo.ID != "2" {
		t.Errorf("Governing() combo = %s, want 2", combo.ID)
	}

	got, combo = Governing(nil, LoadCombinations)
	if got != 0 || combo.ID != "" {
		t.Errorf("Governing(nil) = %v, %+v", got, combo)
	}
}
