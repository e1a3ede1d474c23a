package model

type VariationRequestBody struct {
	Notes       []string `json:"notes"`
	Generations int      `json:"generations"`
	Seed        int64    `json:"seed"`
	Elitism     bool     `json:"elitism"`
}

type VariationResponse struct {
	Id           string   `json:"id"`
	StartFitness float64  `json:"start_fitness"`
	FinalFitness float64  `json:"final_fitness"`
	Generations  int      `json:"generations"`
	Notes        []string `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
