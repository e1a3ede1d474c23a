package constants

import (
	"os"
	"strconv"
)

func GetPort() string {
	port := os.Getenv("GENECOMPOSER_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMODB_ENDPOINT")
}

func GetVariationsTable() string {
	table := os.Getenv("VARIATIONS_TABLE")
	if table != "" {
		return table
	}
	return "genecomposer-variations"
}

func GetAwsRegion() string {
	region := os.Getenv("AWS_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}

// GetDefaultGenerations reads GENERATIONS, falling back to
// DefaultGenerations when unset or malformed.
func GetDefaultGenerations() int {
	n, err := strconv.Atoi(os.Getenv("GENERATIONS"))
	if err != nil {
		return DefaultGenerations
	}
	return n
}

const DefaultGenerations = 100

const PopulationSize = 100

// highest rank reachable by each selection tier
const (
	TopTier    = 5
	MiddleTier = 10
	BottomTier = 25
)

// 7 in 10 to stay in a tier
const (
	TierAccept = 7
	TierDraw   = 10
)

// 1 in 100 copied notes gets replaced
const (
	MutationChance = 1
	MutationDraw   = 100
)

const (
	DefaultVelocity   = 100
	DefaultBPM        = 120.0
	DefaultResolution = 960
)

const VariationSuffix = "_variation"

const MaxServeGenerations = 5000
