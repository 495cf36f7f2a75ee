package game

import "fmt"

// CareerStage is the ordered life phase of a wrestler, derived solely
// from grade. The stage decides the weight-class system, opponent
// scaling and the postseason phase sequence.
type CareerStage int

const (
	StageYouth CareerStage = iota
	StageJuniorHigh
	StageHighSchool
	StageCollege
	StagePostCollege
)

func (cs CareerStage) String() string {
	switch cs {
	case StageYouth:
		return "Youth"
	case StageJuniorHigh:
		return "JuniorHigh"
	case StageHighSchool:
		return "HighSchool"
	case StageCollege:
		return "College"
	case StagePostCollege:
		return "PostCollege"
	default:
		return "unknown"
	}
}

// ParseCareerStage turns a persisted stage name back into a CareerStage.
func ParseCareerStage(name string) (CareerStage, error) {
	switch name {
	case "Youth":
		return StageYouth, nil
	case "JuniorHigh":
		return StageJuniorHigh, nil
	case "HighSchool":
		return StageHighSchool, nil
	case "College":
		return StageCollege, nil
	case "PostCollege":
		return StagePostCollege, nil
	default:
		return StageYouth, fmt.Errorf("unknown career stage %q", name)
	}
}

// StageForGrade maps a grade to its career stage. Grade bands are
// fixed: 1-6 youth, 7-8 junior high, 9-12 high school, 13-16 college,
// everything beyond is post-college.
func StageForGrade(grade int) CareerStage {
	switch {
	case grade <= 6:
		return StageYouth
	case grade <= 8:
		return StageJuniorHigh
	case grade <= 12:
		return StageHighSchool
	case grade <= 16:
		return StageCollege
	default:
		return StagePostCollege
	}
}

// WeightSystem identifies which sanctioning body's weight-class table
// applies at a given career stage.
type WeightSystem int

const (
	SystemYouth WeightSystem = iota
	SystemPIAA
	SystemNCAA
)

var weightClasses = map[WeightSystem][]int{
	SystemYouth: {60, 70, 80, 90, 100, 110},
	SystemPIAA:  {107, 114, 121, 127, 133, 139, 145, 152, 160, 172, 189, 215, 285},
	SystemNCAA:  {125, 133, 141, 149, 157, 165, 174, 184, 197, 285},
}

// WeightSystem returns the sanctioning system active for this stage.
func (cs CareerStage) WeightSystem() WeightSystem {
	switch cs {
	case StageYouth:
		return SystemYouth
	case StageJuniorHigh, StageHighSchool:
		return SystemPIAA
	default:
		return SystemNCAA
	}
}

// Classes returns the legal weight classes for a system, ordered
// ascending. The returned slice is shared; callers must not mutate it.
func (ws WeightSystem) Classes() []int {
	return weightClasses[ws]
}

// WeightClasses returns the legal weight classes at this stage.
func (cs CareerStage) WeightClasses() []int {
	return cs.WeightSystem().Classes()
}

// ClosestWeightClass picks the class nearest to current by absolute
// difference. Ties resolve to the lighter class since the table is
// scanned ascending.
func ClosestWeightClass(classes []int, current int) int {
	closest := classes[0]
	for _, c := range classes[1:] {
		if abs(c-current) < abs(closest-current) {
			closest = c
		}
	}
	return closest
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
