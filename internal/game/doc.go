// Package game runs the interactive dice game on a line-oriented terminal.
//
// The loop is boundary code: it parses menu input, drives one fairness
// protocol per roll and prints transcripts. Dice rules and probabilities live
// in the core packages.
package game
