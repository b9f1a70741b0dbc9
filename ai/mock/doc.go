// Package mock provides test doubles for the ai package interfaces.
//
// Each mock supports behavior injection through function fields and tracks
// call counts, so tests can both script responses and assert interaction.
package mock
