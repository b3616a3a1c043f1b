package domain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		academic  float64
		narrative float64
		want      Label
	}{
		{"all quiet", 0.1, 0.1, General},
		{"academic density", 0.5, 0.0, Academic},
		{"narrative density", 0.2, 0.6, Narrative},
		{"below cutoff", 0.44, 0.44, General},
		{"exactly at cutoff", 0.45, 0.0, Academic},
		{"academic wins over narrative", 0.5, 0.9, Academic},
	}
	for _, tt := range tests {
		if got := Classify(tt.academic, tt.narrative); got != tt.want {
			t.Errorf("%s: Classify(%v, %v) = %s, want %s",
				tt.name, tt.academic, tt.narrative, got, tt.want)
		}
	}
}
