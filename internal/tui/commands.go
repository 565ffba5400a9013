package tui

import (
	"context"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gpessoni/pokedex/internal/browser"
	"github.com/gpessoni/pokedex/internal/collection"
	"github.com/gpessoni/pokedex/internal/domain"
)

// Command factories for async operations

// LoadPageCmd fetches one catalog page
func LoadPageCmd(src domain.CatalogSource, req browser.PageRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		items, hasNext, err := src.List(ctx, req.Limit, req.Offset)
		if err != nil {
			return PageFailedMsg{Seq: req.Seq, Err: err}
		}
		return PageLoadedMsg{Seq: req.Seq, Items: items, HasNext: hasNext}
	}
}

// SearchCmd looks up a single pokemon by exact name or catalog id
func SearchCmd(src domain.CatalogSource, req browser.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var item domain.Pokemon
		var err error
		if id, convErr := strconv.Atoi(req.Term); convErr == nil {
			item, err = src.GetByID(ctx, id)
		} else {
			item, err = src.GetByName(ctx, req.Term)
		}
		if err != nil {
			return SearchFailedMsg{Seq: req.Seq, Term: req.Term, Err: err}
		}
		return SearchFoundMsg{Seq: req.Seq, Item: item}
	}
}

// LoadDetailCmd hydrates a pokemon for the detail view
func LoadDetailCmd(src domain.CatalogSource, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		item, err := src.GetByName(ctx, name)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading pokemon details"}
		}
		return DetailLoadedMsg{Item: item}
	}
}

// RefreshCollectionCmd reloads the caught index from the backend
func RefreshCollectionCmd(svc *collection.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return CollectionRefreshedMsg{Err: svc.Refresh(ctx)}
	}
}

// CatchCmd records a catch on the backend
func CatchCmd(svc *collection.Service, p domain.Pokemon) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, err := svc.Catch(ctx, p)
		return PokemonCaughtMsg{Name: p.Name, Err: err}
	}
}

// ReleaseCmd removes a caught pokemon on the backend
func ReleaseCmd(svc *collection.Service, rec domain.CaughtPokemon) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return PokemonReleasedMsg{Name: rec.Name, Err: svc.Release(ctx, rec)}
	}
}

// LoginCmd authenticates against the backend
func LoginCmd(repo domain.AuthRepository, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cred, err := repo.Login(ctx, email, password)
		if err != nil {
			return AuthResultMsg{Err: err}
		}
		return AuthResultMsg{Cred: &cred}
	}
}

// RegisterCmd creates an account and returns its first credential
func RegisterCmd(repo domain.AuthRepository, email, name, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cred, err := repo.Register(ctx, email, name, password)
		if err != nil {
			return AuthResultMsg{Registered: true, Err: err}
		}
		return AuthResultMsg{Cred: &cred, Registered: true}
	}
}

// LoadTrainersCmd loads the trainer directory with each trainer's pokemons
func LoadTrainersCmd(repo domain.TrainerRepository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		trainers, err := repo.ListTrainers(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading trainers"}
		}
		for i := range trainers {
			pokemons, err := repo.TrainerPokemons(ctx, trainers[i].ID)
			if err != nil {
				return ErrMsg{Err: err, Context: "loading trainer pokemons"}
			}
			trainers[i].Pokemons = pokemons
		}
		return TrainersLoadedMsg{Trainers: trainers}
	}
}

// ExpireToastCmd dismisses a notification after the queue TTL
func ExpireToastCmd(id string, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
