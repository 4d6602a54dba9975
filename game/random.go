package game

import "math/rand/v2"

// PickFunc selects the kind of the next spawned piece. The engine calls it
// once per spawn; injecting a deterministic one makes tests reproducible.
type PickFunc func() Kind

// RandomKind picks uniformly among the seven kinds.
func RandomKind() Kind {
	return Kind(rand.IntN(numKinds))
}
