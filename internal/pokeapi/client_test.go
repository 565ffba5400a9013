package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpessoni/pokedex/internal/domain"
)

// fakeCatalog serves a /pokemon list endpoint plus per-name detail endpoints.
func fakeCatalog(t *testing.T, total int) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/pokemon" {
			limit, offset := 20, 0
			fmt.Sscan(r.URL.Query().Get("limit"), &limit)
			fmt.Sscan(r.URL.Query().Get("offset"), &offset)

			resp := listResponse{Count: total}
			for i := offset; i < offset+limit && i < total; i++ {
				resp.Results = append(resp.Results, listEntry{Name: fmt.Sprintf("poke-%d", i+1)})
			}
			if offset+limit < total {
				next := srv.URL + "/pokemon?offset=next"
				resp.Next = &next
			}
			json.NewEncoder(w).Encode(resp)
			return
		}

		name := strings.TrimPrefix(r.URL.Path, "/pokemon/")
		var id int
		if _, err := fmt.Sscanf(name, "poke-%d", &id); err != nil {
			http.NotFound(w, r)
			return
		}
		dto := pokemonDTO{ID: id, Name: name, Height: 7, Weight: 69}
		dto.Types = []typeSlotDTO{{Slot: 1}}
		dto.Types[0].Type.Name = "grass"
		dto.Sprites.FrontDefault = fmt.Sprintf("sprite-%d.png", id)
		json.NewEncoder(w).Encode(dto)
	}))
	return srv
}

func TestListHydratesPageInOrder(t *testing.T) {
	srv := fakeCatalog(t, 45)
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	items, hasNext, err := c.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.True(t, hasNext)
	require.Len(t, items, 20)
	for i, p := range items {
		assert.Equal(t, i+1, p.ID, "hydrated details keep the page order")
	}
}

func TestListLastPageHasNoNext(t *testing.T) {
	srv := fakeCatalog(t, 45)
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	items, hasNext, err := c.List(context.Background(), 20, 40)
	require.NoError(t, err)
	assert.False(t, hasNext)
	assert.Len(t, items, 5)
}

func TestGetByNameNormalizesKey(t *testing.T) {
	srv := fakeCatalog(t, 5)
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	p, err := c.GetByName(context.Background(), "  Poke-3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, p.ID)
	assert.Equal(t, "grass", p.PrimaryType())
}

func TestGetByNameMissIsNotFound(t *testing.T) {
	srv := fakeCatalog(t, 5)
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.GetByName(context.Background(), "missingno")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pokemon/25", r.URL.Path)
		dto := pokemonDTO{ID: 25, Name: "pikachu"}
		dto.Types = []typeSlotDTO{{Slot: 1}}
		dto.Types[0].Type.Name = "electric"
		json.NewEncoder(w).Encode(dto)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	p, err := c.GetByID(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, "pikachu", p.Name)
}
