package parameter

// Demo Spawner
const (
	// SpawnPerFrame is the number of records spawned every frame
	SpawnPerFrame = 100

	// SpawnExtent is the half-width of the square spawn area in world units
	SpawnExtent float32 = 500

	// SpawnHeight is the Y of every spawned record
	SpawnHeight float32 = 1

	// MaxSpawnValue bounds random values to [0, MaxSpawnValue)
	MaxSpawnValue = 999999999

	// SpawnStyles bounds random styles to [0, SpawnStyles)
	SpawnStyles = 3

	// SpawnSeed seeds the demo's random spawner
	SpawnSeed = 1
)
