// Package core is the headless level simulation: kinematic bodies for the
// player and the children, the interactables that react to them, and the
// fixed-order Level.Update that ties movement resolution to the trigger
// protocol. It imports no rendering or input packages, so it runs the same
// under the ebiten host, the replay runner and tests.
package core
