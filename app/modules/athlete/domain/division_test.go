package athletedomain

import (
	"testing"

	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

func boolPtr(b bool) *bool { return &b }

func TestClassifyDivision(t *testing.T) {
	tests := []struct {
		name      string
		grade     Grade
		firstYear *bool
		want      Division
	}{
		{"5th grade is Novice", Grade5th, nil, DivisionNovice},
		{"6th grade is Novice", Grade6th, boolPtr(true), DivisionNovice},
		{"7th grade is Intermediate", Grade7th, nil, DivisionIntermediate},
		{"8th grade is Intermediate", Grade8th, boolPtr(false), DivisionIntermediate},
		{"freshman is JV unconditionally", GradeFreshman, boolPtr(false), DivisionJuniorVarsity},
		{"freshman with nil flag is still JV", GradeFreshman, nil, DivisionJuniorVarsity},
		{"sophomore first year is JV", GradeSophomore, boolPtr(true), DivisionJuniorVarsity},
		{"sophomore returning is Varsity", GradeSophomore, boolPtr(false), DivisionVarsity},
		{"junior returning is Varsity", GradeJunior, boolPtr(false), DivisionVarsity},
		{"senior first year is JV", GradeSenior, boolPtr(true), DivisionJuniorVarsity},
		{"sophomore with nil flag gets no division", GradeSophomore, nil, DivisionNone},
		{"college is Collegiate", GradeCollege, nil, DivisionCollegiate},
		{"missing grade gets no division", Grade(""), boolPtr(true), DivisionNone},
		{"unknown grade gets no division", Grade("kindergarten"), nil, DivisionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDivision(tt.grade, tt.firstYear); got != tt.want {
				t.Errorf("ClassifyDivision(%q, %v) = %q, want %q", tt.grade, tt.firstYear, got, tt.want)
			}
		})
	}
}

func TestAthlete_EffectiveDivision(t *testing.T) {
	override := DivisionVarsity

	a := Athlete{
		ID:                   sharedtypes.NewAthleteID(),
		Grade:                GradeSophomore,
		FirstYearCompetition: boolPtr(true),
	}

	if got := a.EffectiveDivision(); got != DivisionJuniorVarsity {
		t.Fatalf("expected calculated division %q, got %q", DivisionJuniorVarsity, got)
	}

	a.DivisionOverride = &override
	if got := a.EffectiveDivision(); got != DivisionVarsity {
		t.Fatalf("override should win: expected %q, got %q", DivisionVarsity, got)
	}

	// The calculated value must survive the override for operator visibility.
	if got := a.CalculatedDivision(); got != DivisionJuniorVarsity {
		t.Fatalf("calculated division must not be overwritten: expected %q, got %q", DivisionJuniorVarsity, got)
	}
}
