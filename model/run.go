package model

import "time"

type RunRecord struct {
	Id           string
	Source       string
	Seed         int64
	Generations  int
	StartFitness float64
	FinalFitness float64
	Notes        []string
	CreatedAt    time.Time
}

type FileNumToMidiPath = map[uint32]string
