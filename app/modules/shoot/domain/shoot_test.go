package shootdomain

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		scores []StationScore
		want   Totals
	}{
		{
			name: "full trap round",
			scores: []StationScore{
				{Station: 1, Hits: 23, Possible: 25},
				{Station: 2, Hits: 25, Possible: 25},
			},
			want: Totals{TotalTargets: 48, TotalPossible: 50, Percentage: 96},
		},
		{
			name:   "empty scores",
			scores: nil,
			want:   Totals{},
		},
		{
			name: "zero possible yields zero percent, not an error",
			scores: []StationScore{
				{Station: 1, Hits: 0, Possible: 0},
			},
			want: Totals{},
		},
		{
			name: "single miss-everything round",
			scores: []StationScore{
				{Station: 1, Hits: 0, Possible: 25},
			},
			want: Totals{TotalTargets: 0, TotalPossible: 25, Percentage: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.scores)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_OrderInvariant(t *testing.T) {
	scores := []StationScore{
		{Station: 1, Hits: 20, Possible: 25},
		{Station: 2, Hits: 22, Possible: 25},
		{Station: 3, Hits: 19, Possible: 25},
		{Station: 4, Hits: 25, Possible: 25},
	}
	want := Normalize(scores)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]StationScore, len(scores))
		copy(shuffled, scores)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := Normalize(shuffled); got != want {
			t.Fatalf("Normalize not order invariant: got %+v want %+v for order %v", got, want, shuffled)
		}
	}
}

func TestValidateScores(t *testing.T) {
	tests := []struct {
		name    string
		scores  []StationScore
		wantErr bool
	}{
		{"valid", []StationScore{{Station: 1, Hits: 20, Possible: 25}}, false},
		{"empty", nil, true},
		{"hits above possible", []StationScore{{Station: 1, Hits: 26, Possible: 25}}, true},
		{"negative hits", []StationScore{{Station: 1, Hits: -1, Possible: 25}}, true},
		{"negative possible", []StationScore{{Station: 1, Hits: 0, Possible: -5}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScores(tt.scores)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScores() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
