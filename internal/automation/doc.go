// Package automation runs scripted batches of launches into a session:
// yaml scenario files and one-parameter sweeps.
package automation
