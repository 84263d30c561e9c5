package reactions

// Transition computes the next reaction state for a single user on a
// single post. States are "" (none), PolarityLike, and PolarityDislike.
//
//	none     --like---> liked       liked    --like---> none
//	none     --dislike> disliked    disliked --dislike> none
//	liked    --dislike> disliked    disliked --like---> liked
//
// Repeating the current polarity toggles off; a differing polarity
// replaces, so at most one reaction per user always holds.
func Transition(current, polarity string) string {
	if current == polarity {
		return ""
	}
	return polarity
}
