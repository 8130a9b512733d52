package flavor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

func firstRNG(int) int { return 0 }

func reply(text string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: text}}},
	}
}

func TestAmountFormatter(t *testing.T) {
	assert.Equal(t, "R$ 1.234.567", NewAmountFormatter("pt-BR", "R$").Format(1234567))
	assert.Equal(t, "$ 1,234", NewAmountFormatter("en-US", "$").Format(1234))
	assert.Equal(t, "R$ 90", NewAmountFormatter("not a locale!", "").Format(90))
}

func TestGenerate_NoClientUsesFallback(t *testing.T) {
	g := NewGeneratorWithClient(Config{}, nil, firstRNG)

	text := g.Generate(context.Background(), CategorySlots, 250, true)

	assert.Equal(t, "Os rolos giraram a seu favor: R$ 250 direto pro bolso!", text)
}

func TestNewGenerator_EmptyKeyDisablesRemote(t *testing.T) {
	g := NewGenerator(Config{}, firstRNG)

	assert.Nil(t, g.client)
	assert.NotEmpty(t, g.Generate(context.Background(), CategoryDice, 10, false))
}

func TestFallback_EveryCategoryHasBothOutcomes(t *testing.T) {
	for _, category := range []string{CategorySlots, CategoryRoulette, CategoryDice, CategoryBlackjack, CategoryExchange, CategoryDefault} {
		for _, won := range []bool{true, false} {
			templates := fallbackTemplates[templateKey{category, won}]
			require.NotEmpty(t, templates, "%s won=%v", category, won)
			for _, tmpl := range templates {
				assert.Equal(t, 1, strings.Count(tmpl, "%s"), tmpl)
			}
		}
	}
}

func TestFallback_UnknownCategoryUsesDefault(t *testing.T) {
	g := NewGeneratorWithClient(Config{}, nil, firstRNG)

	assert.Equal(t, "Que pena, você perdeu R$ 5.", g.Fallback("poker", 5, false))
}

func TestFallback_PicksWithRNG(t *testing.T) {
	g := NewGeneratorWithClient(Config{}, nil, func(n int) int { return n - 1 })

	text := g.Fallback(CategorySlots, 10, false)

	assert.Equal(t, "Quase! Mas R$ 10 ficaram com a casa.", text)
}

func TestGenerate_RemoteReply(t *testing.T) {
	// ARRANGE
	client := new(MockCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		return req.Model == "test-model" &&
			len(req.Messages) == 2 &&
			strings.Contains(req.Messages[1].Content, "Jogo: roulette. Resultado: vitória. Valor: R$ 1.000.") &&
			strings.Contains(req.Messages[1].Content, "Detalhes: red.")
	})).Return(reply("  A roleta te ama hoje!  "), nil)
	g := NewGeneratorWithClient(Config{Model: "test-model"}, client, firstRNG)

	// ACT
	text := g.Generate(context.Background(), CategoryRoulette, 1000, true, "red")

	// ASSERT
	assert.Equal(t, "A roleta te ama hoje!", text)
	client.AssertExpectations(t)
}

func TestGenerate_RemoteFailuresFallBack(t *testing.T) {
	tests := []struct {
		name string
		resp openai.ChatCompletionResponse
		err  error
	}{
		{"error", openai.ChatCompletionResponse{}, errors.New("quota exceeded")},
		{"no choices", openai.ChatCompletionResponse{}, nil},
		{"blank text", reply("   "), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockCompleter)
			client.On("CreateChatCompletion", mock.Anything, mock.Anything).Return(tt.resp, tt.err)
			g := NewGeneratorWithClient(Config{}, client, firstRNG)

			text := g.Generate(context.Background(), CategoryExchange, 90, true)

			assert.Equal(t, "Fichas trocadas! R$ 90 creditados na sua carteira.", text)
		})
	}
}

func TestGenerate_HTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"index":0,"message":{"role":"assistant","content":"Sete, sete, sete!"}}]}`)
	}))
	defer srv.Close()

	g := NewGenerator(Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1"}, firstRNG)

	assert.Equal(t, "Sete, sete, sete!", g.Generate(context.Background(), CategorySlots, 250, true))
}

func TestGenerate_HTTPServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGenerator(Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1"}, firstRNG)

	assert.Equal(t, "Os dados não ajudaram, R$ 10 perdidos.", g.Generate(context.Background(), CategoryDice, 10, false))
}

func TestGenerate_TimeoutFallsBack(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	g := NewGenerator(Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Timeout: 50 * time.Millisecond}, firstRNG)

	start := time.Now()
	text := g.Generate(context.Background(), CategoryBlackjack, 40, true)

	assert.Equal(t, "Mão vencedora! O crupiê paga R$ 40.", text)
	assert.Less(t, time.Since(start), 2*time.Second)
}
