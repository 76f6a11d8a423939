package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestOracle(endpoint string) *ChatOracle {
	return &ChatOracle{
		Endpoint: endpoint,
		APIKey:   "test-key",
		Model:    "test-model",
		Client:   &http.Client{},
		Logger:   testLogger(),
	}
}

func completionHandler(t *testing.T, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func TestChatOracleParsesSkillDocument(t *testing.T) {
	content := `{"skills":[{"name":"SQL","description":"Query databases","category":"Technical","level":"Beginner","resources":[{"title":"SQL Tutorial","url":"https://example.com/sql","type":"course"}]}]}`
	srv := httptest.NewServer(completionHandler(t, content))
	defer srv.Close()

	skills, err := newTestOracle(srv.URL).GenerateSkills("Data Scientist", "Learn SQL", "beginner")
	assert.NoError(t, err)
	assert.Len(t, skills, 1)
	assert.Equal(t, "SQL", skills[0].Name)
	assert.Len(t, skills[0].Resources, 1)
	assert.Equal(t, "https://example.com/sql", skills[0].Resources[0].URL)
}

func TestChatOracleUnparseableContentDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(completionHandler(t, "I am not JSON, sorry."))
	defer srv.Close()

	skills, err := newTestOracle(srv.URL).GenerateSkills("Data Scientist", "Learn SQL", "beginner")
	assert.NoError(t, err)
	assert.Empty(t, skills)
}

func TestChatOracleMissingSkillsKeyDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(completionHandler(t, `{"steps":[1,2,3]}`))
	defer srv.Close()

	skills, err := newTestOracle(srv.URL).GenerateSkills("Data Scientist", "Learn SQL", "beginner")
	assert.NoError(t, err)
	assert.Empty(t, skills)
}

func TestChatOracleAPIErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestOracle(srv.URL).GenerateSkills("Data Scientist", "Learn SQL", "beginner")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestChatOracleTransportErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	_, err := newTestOracle(srv.URL).GenerateSkills("Data Scientist", "Learn SQL", "beginner")
	assert.Error(t, err)
}

func TestChatOracleEmptyChoicesSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := newTestOracle(srv.URL).GenerateSkills("Data Scientist", "Learn SQL", "beginner")
	assert.Error(t, err)
}
