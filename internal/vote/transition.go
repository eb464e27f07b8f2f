package vote

import "github.com/iudanet/muslimguide/internal/models"

// Delta одна операция над удаленным счетчиком
type Delta struct {
	Field  models.CounterField
	Amount int
}

// Transition computes the next choice for an item and the counter deltas that move
// the remote counters from current to next. When two deltas are needed the removal
// always comes first.
//
//	None    + Like    -> Like     likes +1
//	None    + Dislike -> Dislike  dislikes +1
//	Like    + Like    -> None     likes -1
//	Dislike + Dislike -> None     dislikes -1
//	Like    + Dislike -> Dislike  likes -1, dislikes +1
//	Dislike + Like    -> Like     dislikes -1, likes +1
func Transition(current, requested models.VoteChoice) (models.VoteChoice, []Delta) {
	if current == requested {
		return models.VoteNone, []Delta{{Field: current.Field(), Amount: -1}}
	}

	deltas := make([]Delta, 0, 2)
	if current != models.VoteNone {
		deltas = append(deltas, Delta{Field: current.Field(), Amount: -1})
	}
	deltas = append(deltas, Delta{Field: requested.Field(), Amount: 1})

	return requested, deltas
}
