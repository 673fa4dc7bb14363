// Package cost defines the edge cost models and heuristics used by the
// weighted and informed search strategies.
//
// Edge costs
//
//   - Unit: every single-letter transition costs 1. Uniform-cost search with
//     Unit returns paths of the same length as BFS.
//   - LetterFrequency: a transition costs the rarity of the letter it
//     introduces, looked up in a fixed A–Z table (common letters 1, very rare
//     letters 5). Uniform-cost search with LetterFrequency minimizes the sum
//     of those costs rather than the number of steps.
//
// Both models require a single-edit pair and fail with
// core.ErrInvalidTransition otherwise. Every cost they return is a positive
// integer, which is what goal-on-pop termination in UCS relies on.
//
// Heuristics
//
//   - Hamming: the number of positions in which a word differs from the goal.
//     Every edge changes exactly one position, so Hamming never overestimates
//     the remaining edge count (admissible), and as a metric it satisfies the
//     triangle inequality (consistent). A* with Hamming is optimal under unit
//     edge costs.
package cost
