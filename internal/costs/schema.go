package costs

// Cost families understood by the inference server.
const (
	FamilyMutation            = "mutationLexicalCost"
	FamilyTransitionFromTrue  = "transitionCostFromTrue"
	FamilyTransitionFromFalse = "transitionCostFromFalse"
	FamilyInsertion           = "insertionLexicalCost"
)

// Slot boundaries inside the vector.
const (
	MutationOffset            = 0
	TransitionFromTrueOffset  = 14
	TransitionFromFalseOffset = 21
	InsertionOffset           = 28
)

// Directive names one slot of the cost vector as the server expects it.
type Directive struct {
	Family   string
	Relation string
}

// Schema is the fixed, index-aligned layout of the cost vector. The same order is used
// for the preamble, for model files and for the server's feature counts.
var Schema = [Size]Directive{
	{FamilyMutation, "angle_nn"},
	{FamilyMutation, "verb_entail"},
	{FamilyMutation, "antonym"},
	{FamilyMutation, "holonym"},
	{FamilyMutation, "hyponym"},
	{FamilyMutation, "meronym"},
	{FamilyMutation, "quantifier_down"},
	{FamilyMutation, "quantifier_negate"},
	{FamilyMutation, "quantifier_reword"},
	{FamilyMutation, "quantifier_up"},
	{FamilyMutation, "sense_add"},
	{FamilyMutation, "sense_remove"},
	{FamilyMutation, "similar"},
	{FamilyMutation, "synonym"},
	{FamilyTransitionFromTrue, "equivalent"},
	{FamilyTransitionFromTrue, "forward_entailment"},
	{FamilyTransitionFromTrue, "reverse_entailment"},
	{FamilyTransitionFromTrue, "negation"},
	{FamilyTransitionFromTrue, "alternation"},
	{FamilyTransitionFromTrue, "cover"},
	{FamilyTransitionFromTrue, "independence"},
	{FamilyTransitionFromFalse, "equivalent"},
	{FamilyTransitionFromFalse, "forward_entailment"},
	{FamilyTransitionFromFalse, "reverse_entailment"},
	{FamilyTransitionFromFalse, "negation"},
	{FamilyTransitionFromFalse, "alternation"},
	{FamilyTransitionFromFalse, "cover"},
	{FamilyTransitionFromFalse, "independence"},
	{FamilyInsertion, "acomp"},
	{FamilyInsertion, "advcl"},
	{FamilyInsertion, "advmod"},
	{FamilyInsertion, "agent"},
	{FamilyInsertion, "purpcl"},
	{FamilyInsertion, "amod"},
	{FamilyInsertion, "appos"},
	{FamilyInsertion, "aux"},
	{FamilyInsertion, "auxpass"},
	{FamilyInsertion, "cc"},
	{FamilyInsertion, "ccomp"},
	{FamilyInsertion, "conj"},
	{FamilyInsertion, "cop"},
	{FamilyInsertion, "csubj"},
	{FamilyInsertion, "csubjpass"},
	{FamilyInsertion, "dep"},
	{FamilyInsertion, "det"},
	{FamilyInsertion, "discourse"},
	{FamilyInsertion, "dobj"},
	{FamilyInsertion, "expl"},
	{FamilyInsertion, "goeswith"},
	{FamilyInsertion, "iobj"},
	{FamilyInsertion, "mark"},
	{FamilyInsertion, "mwe"},
	{FamilyInsertion, "neg"},
	{FamilyInsertion, "nn"},
	{FamilyInsertion, "npadvmod"},
	{FamilyInsertion, "nsubj"},
	{FamilyInsertion, "nsubjpass"},
	{FamilyInsertion, "num"},
	{FamilyInsertion, "number"},
	{FamilyInsertion, "parataxis"},
	{FamilyInsertion, "pcomp"},
	{FamilyInsertion, "pobj"},
	{FamilyInsertion, "poss"},
	{FamilyInsertion, "possessive"},
	{FamilyInsertion, "preconj"},
	{FamilyInsertion, "predet"},
	{FamilyInsertion, "prep"},
	{FamilyInsertion, "prt"},
	{FamilyInsertion, "punct"},
	{FamilyInsertion, "quantmod"},
	{FamilyInsertion, "rcmod"},
	{FamilyInsertion, "root"},
	{FamilyInsertion, "tmod"},
	{FamilyInsertion, "vmod"},
	{FamilyInsertion, "partmod"},
	{FamilyInsertion, "infmod"},
	{FamilyInsertion, "xcomp"},
	{FamilyInsertion, "conj_and"},
	{FamilyInsertion, "conj_and\\/or"},
	{FamilyInsertion, "conj_both"},
	{FamilyInsertion, "conj_but"},
	{FamilyInsertion, "conj_or"},
	{FamilyInsertion, "conj_nor"},
	{FamilyInsertion, "conj_plus"},
	{FamilyInsertion, "conj_x"},
	{FamilyInsertion, "prep_aboard"},
	{FamilyInsertion, "prep_about"},
	{FamilyInsertion, "prep_above"},
	{FamilyInsertion, "prep_across"},
	{FamilyInsertion, "prep_after"},
	{FamilyInsertion, "prep_against"},
	{FamilyInsertion, "prep_along"},
	{FamilyInsertion, "prep_alongside"},
	{FamilyInsertion, "prep_amid"},
	{FamilyInsertion, "prep_among"},
	{FamilyInsertion, "prep_anti"},
	{FamilyInsertion, "prep_around"},
	{FamilyInsertion, "prep_as"},
	{FamilyInsertion, "prep_at"},
	{FamilyInsertion, "prep_before"},
	{FamilyInsertion, "prep_behind"},
	{FamilyInsertion, "prep_below"},
	{FamilyInsertion, "prep_beneath"},
	{FamilyInsertion, "prep_beside"},
	{FamilyInsertion, "prep_besides"},
	{FamilyInsertion, "prep_between"},
	{FamilyInsertion, "prep_beyond"},
	{FamilyInsertion, "prep_but"},
	{FamilyInsertion, "prep_by"},
	{FamilyInsertion, "prep_concerning"},
	{FamilyInsertion, "prep_considering"},
	{FamilyInsertion, "prep_despite"},
	{FamilyInsertion, "prep_down"},
	{FamilyInsertion, "prep_during"},
	{FamilyInsertion, "prep_en"},
	{FamilyInsertion, "prep_except"},
	{FamilyInsertion, "prep_excepting"},
	{FamilyInsertion, "prep_excluding"},
	{FamilyInsertion, "prep_following"},
	{FamilyInsertion, "prep_for"},
	{FamilyInsertion, "prep_from"},
	{FamilyInsertion, "prep_if"},
	{FamilyInsertion, "prep_in"},
	{FamilyInsertion, "prep_including"},
	{FamilyInsertion, "prep_inside"},
	{FamilyInsertion, "prep_into"},
	{FamilyInsertion, "prep_like"},
	{FamilyInsertion, "prep_minus"},
	{FamilyInsertion, "prep_near"},
	{FamilyInsertion, "prep_of"},
	{FamilyInsertion, "prep_off"},
	{FamilyInsertion, "prep_on"},
	{FamilyInsertion, "prep_onto"},
	{FamilyInsertion, "prep_opposite"},
	{FamilyInsertion, "prep_out"},
	{FamilyInsertion, "prep_outside"},
	{FamilyInsertion, "prep_over"},
	{FamilyInsertion, "prep_past"},
	{FamilyInsertion, "prep_per"},
	{FamilyInsertion, "prep_plus"},
	{FamilyInsertion, "prep_regarding"},
	{FamilyInsertion, "prep_round"},
	{FamilyInsertion, "prep_save"},
	{FamilyInsertion, "prep_since"},
	{FamilyInsertion, "prep_than"},
	{FamilyInsertion, "prep_through"},
	{FamilyInsertion, "prep_throughout"},
	{FamilyInsertion, "prep_to"},
	{FamilyInsertion, "prep_toward"},
	{FamilyInsertion, "prep_towards"},
	{FamilyInsertion, "prep_under"},
	{FamilyInsertion, "prep_underneath"},
	{FamilyInsertion, "prep_unlike"},
	{FamilyInsertion, "prep_until"},
	{FamilyInsertion, "prep_up"},
	{FamilyInsertion, "prep_upon"},
	{FamilyInsertion, "prep_versus"},
	{FamilyInsertion, "prep_vs."},
	{FamilyInsertion, "prep_via"},
	{FamilyInsertion, "prep_with"},
	{FamilyInsertion, "prep_within"},
	{FamilyInsertion, "prep_without"},
	{FamilyInsertion, "prep_whether"},
	{FamilyInsertion, "prep_according_to"},
	{FamilyInsertion, "prep_as_per"},
	{FamilyInsertion, "prep_compared_to"},
	{FamilyInsertion, "prep_instead_of"},
	{FamilyInsertion, "prep_preparatory_to"},
	{FamilyInsertion, "prep_across_from"},
	{FamilyInsertion, "prep_as_to"},
	{FamilyInsertion, "prep_compared_with"},
	{FamilyInsertion, "prep_irrespective_of"},
	{FamilyInsertion, "prep_previous_to"},
	{FamilyInsertion, "prep_ahead_of"},
	{FamilyInsertion, "prep_aside_from"},
	{FamilyInsertion, "prep_due_to"},
	{FamilyInsertion, "prep_next_to"},
	{FamilyInsertion, "prep_prior_to"},
	{FamilyInsertion, "prep_along_with"},
	{FamilyInsertion, "prep_away_from"},
	{FamilyInsertion, "prep_depending_on"},
	{FamilyInsertion, "prep_near_to"},
	{FamilyInsertion, "prep_pursuant_to"},
	{FamilyInsertion, "prep_alongside_of"},
	{FamilyInsertion, "prep_based_on"},
	{FamilyInsertion, "prep_except_for"},
	{FamilyInsertion, "prep_off_of"},
	{FamilyInsertion, "prep_regardless_of"},
	{FamilyInsertion, "prep_apart_from"},
	{FamilyInsertion, "prep_because_of"},
	{FamilyInsertion, "prep_exclusive_of"},
	{FamilyInsertion, "prep_out_of"},
	{FamilyInsertion, "prep_subsequent_to"},
	{FamilyInsertion, "prep_as_for"},
	{FamilyInsertion, "prep_close_by"},
	{FamilyInsertion, "prep_contrary_to"},
	{FamilyInsertion, "prep_outside_of"},
	{FamilyInsertion, "prep_such_as"},
	{FamilyInsertion, "prep_as_from"},
	{FamilyInsertion, "prep_close_to"},
	{FamilyInsertion, "prep_followed_by"},
	{FamilyInsertion, "prep_owing_to"},
	{FamilyInsertion, "prep_thanks_to"},
	{FamilyInsertion, "prep_as_of"},
	{FamilyInsertion, "prep_contrary_to"},
	{FamilyInsertion, "prep_inside_of"},
	{FamilyInsertion, "prep_preliminary_to"},
	{FamilyInsertion, "prep_together_with"},
	{FamilyInsertion, "prep_by_means_of"},
	{FamilyInsertion, "prep_in_case_of"},
	{FamilyInsertion, "prep_in_place_of"},
	{FamilyInsertion, "prep_on_behalf_of"},
	{FamilyInsertion, "prep_with_respect_to"},
	{FamilyInsertion, "prep_in_accordance_with"},
	{FamilyInsertion, "prep_in_front_of"},
	{FamilyInsertion, "prep_in_spite_of"},
	{FamilyInsertion, "prep_on_top_of"},
	{FamilyInsertion, "prep_in_addition_to"},
	{FamilyInsertion, "prep_in_lieu_of"},
	{FamilyInsertion, "prep_on_account_of"},
	{FamilyInsertion, "prep_with_regard_to"},
	{FamilyInsertion, "prepc_aboard"},
	{FamilyInsertion, "prepc_about"},
	{FamilyInsertion, "prepc_above"},
	{FamilyInsertion, "prepc_across"},
	{FamilyInsertion, "prepc_after"},
	{FamilyInsertion, "prepc_against"},
	{FamilyInsertion, "prepc_along"},
	{FamilyInsertion, "prepc_amid"},
	{FamilyInsertion, "prepc_among"},
	{FamilyInsertion, "prepc_anti"},
	{FamilyInsertion, "prepc_around"},
	{FamilyInsertion, "prepc_as"},
	{FamilyInsertion, "prepc_at"},
	{FamilyInsertion, "prepc_before"},
	{FamilyInsertion, "prepc_behind"},
	{FamilyInsertion, "prepc_below"},
	{FamilyInsertion, "prepc_beneath"},
	{FamilyInsertion, "prepc_beside"},
	{FamilyInsertion, "prepc_besides"},
	{FamilyInsertion, "prepc_between"},
	{FamilyInsertion, "prepc_beyond"},
	{FamilyInsertion, "prepc_but"},
	{FamilyInsertion, "prepc_by"},
	{FamilyInsertion, "prepc_concerning"},
	{FamilyInsertion, "prepc_considering"},
	{FamilyInsertion, "prepc_despite"},
	{FamilyInsertion, "prepc_down"},
	{FamilyInsertion, "prepc_during"},
	{FamilyInsertion, "prepc_except"},
	{FamilyInsertion, "prepc_excepting"},
	{FamilyInsertion, "prepc_excluding"},
	{FamilyInsertion, "prepc_far_from"},
	{FamilyInsertion, "prepc_following"},
	{FamilyInsertion, "prepc_for"},
	{FamilyInsertion, "prepc_from"},
	{FamilyInsertion, "prepc_in"},
	{FamilyInsertion, "prepc_inside"},
	{FamilyInsertion, "prepc_into"},
	{FamilyInsertion, "prepc_like"},
	{FamilyInsertion, "prepc_minus"},
	{FamilyInsertion, "prepc_near"},
	{FamilyInsertion, "prepc_of"},
	{FamilyInsertion, "prepc_off"},
	{FamilyInsertion, "prepc_on"},
	{FamilyInsertion, "prepc_onto"},
	{FamilyInsertion, "prepc_opposite"},
	{FamilyInsertion, "prepc_outside"},
	{FamilyInsertion, "prepc_over"},
	{FamilyInsertion, "prepc_past"},
	{FamilyInsertion, "prepc_per"},
	{FamilyInsertion, "prepc_plus"},
	{FamilyInsertion, "prepc_regarding"},
	{FamilyInsertion, "prepc_round"},
	{FamilyInsertion, "prepc_save"},
	{FamilyInsertion, "prepc_since"},
	{FamilyInsertion, "prepc_than"},
	{FamilyInsertion, "prepc_through"},
	{FamilyInsertion, "prepc_to"},
	{FamilyInsertion, "prepc_toward"},
	{FamilyInsertion, "prepc_towards"},
	{FamilyInsertion, "prepc_under"},
	{FamilyInsertion, "prepc_underneath"},
	{FamilyInsertion, "prepc_unlike"},
	{FamilyInsertion, "prepc_until"},
	{FamilyInsertion, "prepc_up"},
	{FamilyInsertion, "prepc_upon"},
	{FamilyInsertion, "prepc_versus"},
	{FamilyInsertion, "prepc_via"},
	{FamilyInsertion, "prepc_with"},
	{FamilyInsertion, "prepc_within"},
	{FamilyInsertion, "prepc_without"},
	{FamilyInsertion, "prepc_according_to"},
	{FamilyInsertion, "prepc_as_per"},
	{FamilyInsertion, "prepc_compared_to"},
	{FamilyInsertion, "prepc_instead_of"},
	{FamilyInsertion, "prepc_preparatory_to"},
	{FamilyInsertion, "prepc_across_from"},
	{FamilyInsertion, "prepc_as_to"},
	{FamilyInsertion, "prepc_compared_with"},
	{FamilyInsertion, "prepc_irrespective_of"},
	{FamilyInsertion, "prepc_previous_to"},
	{FamilyInsertion, "prepc_ahead_of"},
	{FamilyInsertion, "prepc_aside_from"},
	{FamilyInsertion, "prepc_due_to"},
	{FamilyInsertion, "prepc_next_to"},
	{FamilyInsertion, "prepc_prior_to"},
	{FamilyInsertion, "prepc_along_with"},
	{FamilyInsertion, "prepc_away_from"},
	{FamilyInsertion, "prepc_depending_on"},
	{FamilyInsertion, "prepc_near_to"},
	{FamilyInsertion, "prepc_pursuant_to"},
	{FamilyInsertion, "prepc_alongside_of"},
	{FamilyInsertion, "prepc_based_on"},
	{FamilyInsertion, "prepc_except_for"},
	{FamilyInsertion, "prepc_off_of"},
	{FamilyInsertion, "prepc_regardless_of"},
	{FamilyInsertion, "prepc_apart_from"},
	{FamilyInsertion, "prepc_because_of"},
	{FamilyInsertion, "prepc_exclusive_of"},
	{FamilyInsertion, "prepc_out_of"},
	{FamilyInsertion, "prepc_subsequent_to"},
	{FamilyInsertion, "prepc_as_for"},
	{FamilyInsertion, "prepc_close_by"},
	{FamilyInsertion, "prepc_contrary_to"},
	{FamilyInsertion, "prepc_outside_of"},
	{FamilyInsertion, "prepc_such_as"},
	{FamilyInsertion, "prepc_as_from"},
	{FamilyInsertion, "prepc_close_to"},
	{FamilyInsertion, "prepc_followed_by"},
	{FamilyInsertion, "prepc_owing_to"},
	{FamilyInsertion, "prepc_thanks_to"},
	{FamilyInsertion, "prepc_as_of"},
	{FamilyInsertion, "prepc_contrary_to"},
	{FamilyInsertion, "prepc_inside_of"},
	{FamilyInsertion, "prepc_preliminary_to"},
	{FamilyInsertion, "prepc_together_with"},
	{FamilyInsertion, "prepc_by_means_of"},
	{FamilyInsertion, "prepc_in_case_of"},
	{FamilyInsertion, "prepc_in_place_of"},
	{FamilyInsertion, "prepc_on_behalf_of"},
	{FamilyInsertion, "prepc_with_respect_to"},
	{FamilyInsertion, "prepc_in_accordance_with"},
	{FamilyInsertion, "prepc_in_front_of"},
	{FamilyInsertion, "prepc_in_spite_of"},
	{FamilyInsertion, "prepc_on_top_of"},
	{FamilyInsertion, "prepc_in_addition_to"},
	{FamilyInsertion, "prepc_in_lieu_of"},
	{FamilyInsertion, "prepc_on_account_of"},
	{FamilyInsertion, "prepc_with_regard_to"},
	{FamilyInsertion, "prepc_with_regard_to"},
	{FamilyInsertion, "op"},
	{FamilyInsertion, "prep_dep"},
}
