// SPDX-License-Identifier: MIT

package builder

// Method tags used as error prefixes.
const (
	methodNewGrid = "NewGrid"
	methodRight   = "Right"
	methodDown    = "Down"
	methodEntr    = "SetEntrance"
	methodExit    = "SetExit"
	methodBuild   = "Build"
	methodRandom  = "Random"
)

const (
	minGridDim = 1
	unset      = -1

	labelCorridor = "c"
	labelOpen     = "o"
	labelWall     = "w"
)

// Defaults for Random.
const (
	defaultMaxDoorCost     = 9
	defaultDoorProbability = 0.2
)
