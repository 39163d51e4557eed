// Package interaction is the aim-and-shoot core: a pure transition function
// for pointer drags, the ball controller bridging the physics feed, and the
// chase camera. It has no engine imports; the systems package adapts it to
// ebiten input and the resolv-backed ball.
//
// Everything here runs on the game's update goroutine and takes no locks.
package interaction
