package models

import "fmt"

// VoteChoice текущий голос устройства за конкретный элемент
type VoteChoice string

// Допустимые значения VoteChoice. None никогда не хранится в VoteRecord:
// снятие голоса удаляет ключ.
const (
	VoteNone    VoteChoice = ""
	VoteLike    VoteChoice = "like"
	VoteDislike VoteChoice = "dislike"
)

// ParseVoteChoice converts user input ("like", "dislike") into a VoteChoice.
func ParseVoteChoice(s string) (VoteChoice, error) {
	switch VoteChoice(s) {
	case VoteLike, VoteDislike:
		return VoteChoice(s), nil
	default:
		return VoteNone, fmt.Errorf("invalid vote %q: must be 'like' or 'dislike'", s)
	}
}

// Field returns the counter field backing this choice.
func (c VoteChoice) Field() CounterField {
	switch c {
	case VoteLike:
		return FieldLikes
	case VoteDislike:
		return FieldDislikes
	default:
		return ""
	}
}

// CounterField имя счетчика на удаленной записи
type CounterField string

const (
	FieldLikes    CounterField = "likes"
	FieldDislikes CounterField = "dislikes"
)

// Valid reports whether f names one of the two vote counters.
func (f CounterField) Valid() bool {
	return f == FieldLikes || f == FieldDislikes
}

// VoteRecord map item id -> choice for a single scope (listing collection or menu).
type VoteRecord map[string]VoteChoice

// Get returns the stored choice or VoteNone.
func (r VoteRecord) Get(itemID string) VoteChoice {
	if r == nil {
		return VoteNone
	}
	return r[itemID]
}

// Clone returns an independent copy of the record.
func (r VoteRecord) Clone() VoteRecord {
	out := make(VoteRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ItemCounters агрегированные счетчики голосов, принадлежат удаленной записи
type ItemCounters struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// Get returns the value of the given counter field.
func (c ItemCounters) Get(f CounterField) int64 {
	if f == FieldDislikes {
		return c.Dislikes
	}
	return c.Likes
}

// CounterUpdate результат применения одной дельты к счетчику.
// Applied ложно, если уменьшение уперлось в ноль и счетчик не изменился.
type CounterUpdate struct {
	ItemCounters
	Applied bool `json:"applied"`
}
