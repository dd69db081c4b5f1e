/*
Package signettest provides test doubles and helpers shared by tests
across the project. It contains no assertions, only fakes with
observable state.
*/
package signettest
