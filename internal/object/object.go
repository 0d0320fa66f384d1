// Package object defines the simulated entities: the player ship, its
// projectiles and the asteroids. Each embeds physics.Body for motion.
package object

// Random is the source of randomness for procedural shapes and kicks.
// *math/rand.Rand satisfies it; tests substitute fixed sequences.
type Random interface {
	Float64() float64
}
