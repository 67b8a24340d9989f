package athletedomain

// Division is the competitive division an athlete shoots in.
type Division string

const (
	DivisionNovice        Division = "Novice"
	DivisionIntermediate  Division = "Intermediate"
	DivisionJuniorVarsity Division = "Junior Varsity"
	DivisionVarsity       Division = "Varsity"
	DivisionCollegiate    Division = "Collegiate"

	// DivisionNone means no division could be assigned from the athlete's
	// grade information.
	DivisionNone Division = ""
)

// Grade is a school grade level.
type Grade string

const (
	Grade5th       Grade = "5th"
	Grade6th       Grade = "6th"
	Grade7th       Grade = "7th"
	Grade8th       Grade = "8th"
	GradeFreshman  Grade = "freshman"
	GradeSophomore Grade = "sophomore"
	GradeJunior    Grade = "junior"
	GradeSenior    Grade = "senior"
	GradeCollege   Grade = "college"
)

// ClassifyDivision maps a grade and first-year-competition flag to a
// division. Freshmen are Junior Varsity regardless of the flag. Upper
// high-school grades need the flag to decide JV vs Varsity; a nil flag there
// yields no division.
func ClassifyDivision(grade Grade, firstYearCompetition *bool) Division {
	switch grade {
	case Grade5th, Grade6th:
		return DivisionNovice
	case Grade7th, Grade8th:
		return DivisionIntermediate
	case GradeFreshman:
		return DivisionJuniorVarsity
	case GradeSophomore, GradeJunior, GradeSenior:
		if firstYearCompetition == nil {
			return DivisionNone
		}
		if *firstYearCompetition {
			return DivisionJuniorVarsity
		}
		return DivisionVarsity
	case GradeCollege:
		return DivisionCollegiate
	default:
		return DivisionNone
	}
}
