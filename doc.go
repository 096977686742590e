// Package scheduler assigns tutorial and lab meeting slots (and, for labs,
// rooms) onto a fortnightly timetable for a university department that has
// already fixed its lecture sections from the prior term.
//
// Scheduling is NP-hard in the general case, so this package uses a
// heuristic approach: a genetic algorithm that evolves a population of
// candidate schedules, scored by a fitness function rewarding variety of
// placement and penalizing lecture clashes, academic-plan infeasibility,
// and room double-booking.
//
// The GA's selection, crossover, and mutation operators are bespoke to this
// domain (core-course protection, room-aware repair) rather than generic;
// see genetic.go and ga.go.
package scheduler
