package builder

// Size minima and fixed names shared by constructors.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minGridDim       = 1
	minCompleteNodes = 1
	minSparseNodes   = 1
	minWheelNodes    = 4
	minPartitionSize = 1

	probMin = 0.0
	probMax = 1.0

	// centerVertexID is the fixed hub name used by Star.
	centerVertexID = "Center"

	// gridIDFmt is the "r,c" coordinate name scheme used by Grid.
	gridIDFmt = "%d,%d"

	// leftPrefix and rightPrefix name the partitions of CompleteBipartite.
	leftPrefix  = "L"
	rightPrefix = "R"
)

// Method tags used as error context.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	methodWheel             = "Wheel"
	methodCompleteBipartite = "CompleteBipartite"
)
