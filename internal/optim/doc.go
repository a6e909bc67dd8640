// Package optim searches launch controls on a grid. [MaxRange] finds the
// launch angle that carries farthest under drag.
package optim
