package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/genecomposer/model"
	"github.com/stretchr/testify/assert"
)

func postVariation(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/variations", bytes.NewReader(data))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndFetchVariation(t *testing.T) {
	assert := assert.New(t)
	router := NewRouter()

	w := postVariation(t, router, model.VariationRequestBody{
		Notes:       []string{"R:1", "C4:1", "E4:1", "G4:2"},
		Generations: 10,
		Seed:        7,
	})
	assert.Equal(http.StatusCreated, w.Code)

	var created model.VariationResponse
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(created.Id)
	assert.Equal(10, created.Generations)
	assert.Len(created.Notes, 4)
	assert.Equal("R:1", created.Notes[0])
	assert.GreaterOrEqual(created.FinalFitness, 0.0)

	req := httptest.NewRequest(http.MethodGet, "/variations/"+created.Id, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(http.StatusOK, w.Code)

	var fetched model.VariationResponse
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(created, fetched)
}

func TestCreateVariationRejectsBadInput(t *testing.T) {
	assert := assert.New(t)
	router := NewRouter()

	cases := []any{
		model.VariationRequestBody{Notes: nil, Generations: 1},
		model.VariationRequestBody{Notes: []string{"Z9"}, Generations: 1},
		model.VariationRequestBody{Notes: []string{"C4"}, Generations: 1000000},
		"not an object",
	}
	for _, body := range cases {
		w := postVariation(t, router, body)
		assert.Equal(http.StatusBadRequest, w.Code, body)

		var res model.ErrorResponse
		assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
		assert.NotEmpty(res.Error)
	}
}

func TestGetUnknownVariation(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/variations/missing", nil)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
