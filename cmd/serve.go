package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/mux"
	"github.com/jsphweid/genecomposer/constants"
	"github.com/jsphweid/genecomposer/db"
	"github.com/jsphweid/genecomposer/model"
	"github.com/jsphweid/genecomposer/note"
	"github.com/jsphweid/genecomposer/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

type variationStore struct {
	mu      sync.RWMutex
	results map[string]model.VariationResponse
	path    string
}

var (
	store       = &variationStore{results: make(map[string]model.VariationResponse)}
	serveRecord bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&store.path, "store", "", "file to keep variations in between restarts")
	serveCmd.Flags().BoolVar(&serveRecord, "record", false, "store every run in DynamoDB")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves variations over http",
	Long:  `Serves variations over http`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func (s *variationStore) load() error {
	if s.path == "" {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	results, err := util.ReadBinary[map[string]model.VariationResponse](s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.results = results
	s.mu.Unlock()
	return nil
}

func (s *variationStore) put(res model.VariationResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[res.Id] = res
	if s.path == "" {
		return nil
	}
	return util.CreateBinary(s.path, s.results)
}

func (s *variationStore) get(id string) (model.VariationResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.results[id]
	return res, ok
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJson(w, status, model.ErrorResponse{Error: msg})
}

func HandleCreateVariation(w http.ResponseWriter, r *http.Request) {
	var input model.VariationRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}

	reference, err := note.ParseAll(input.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.Generations > constants.MaxServeGenerations {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("generations can be at most %v", constants.MaxServeGenerations))
		return
	}

	record, _, err := CreateVariation(r.Context(), reference, VariationOptions{
		Generations: input.Generations,
		Seed:        input.Seed,
		Population:  constants.PopulationSize,
		Elitism:     input.Elitism,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := model.VariationResponse{
		Id:           record.Id,
		StartFitness: record.StartFitness,
		FinalFitness: record.FinalFitness,
		Generations:  record.Generations,
		Notes:        record.Notes,
	}
	if err := store.put(res); err != nil {
		log.Printf("Could not persist variation %v: %v", res.Id, err)
	}
	if serveRecord {
		if err := db.RecordRun(record); err != nil {
			log.Printf("Could not record variation %v: %v", res.Id, err)
		}
	}
	writeJson(w, http.StatusCreated, res)
}

func HandleGetVariation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, ok := store.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "No variation with id "+id)
		return
	}
	writeJson(w, http.StatusOK, res)
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/variations", HandleCreateVariation).Methods("POST")
	router.HandleFunc("/variations/{id}", HandleGetVariation).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() error {
	if err := store.load(); err != nil {
		return err
	}
	addr := ":" + constants.GetPort()
	log.Printf("Listening on %v", addr)
	return http.ListenAndServe(addr, NewRouter())
}
