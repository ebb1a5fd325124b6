package schedule

// RequiredCorrect is the streak needed to finish an exercise, capped by how
// many items the exercise actually shows.
func RequiredCorrect(itemsInExercise int) int {
	if itemsInExercise > 0 && itemsInExercise < 2 {
		return itemsInExercise
	}
	return 2
}

// Advance applies one graded answer to a due item's progress and reports
// whether the due item is complete.
//
// An effectively correct answer grows the streak; reaching the required
// streak finishes the exercise and moves to the next selection slot.
// Otherwise the item pointer advances, wrapping into the next exercise when
// it runs past the end. A miss restarts the current exercise from its first
// item without advancing the exercise slot.
//
// itemsInExercise is the shown item count of the current exercise after
// cause filtering (0 when unknown). selectedCount is the length of the due
// item's exercise selection; a selection of 0 means no content and
// completes the due item outright.
func Advance(p Progress, itemsInExercise, selectedCount int, effectiveCorrect bool) (Progress, bool) {
	if effectiveCorrect {
		p.CorrectInExercise++
		if p.CorrectInExercise >= RequiredCorrect(itemsInExercise) {
			p = nextExercise(p)
		} else {
			p.ItemInExercise++
			if itemsInExercise > 0 && p.ItemInExercise > itemsInExercise {
				p = nextExercise(p)
			}
		}
	} else {
		p.ItemInExercise = 1
		p.CorrectInExercise = 0
	}

	if selectedCount <= 0 {
		return p, true
	}
	return p, p.ExerciseIndex > selectedCount
}

func nextExercise(p Progress) Progress {
	p.ExerciseIndex++
	p.ItemInExercise = 1
	p.CorrectInExercise = 0
	return p
}
