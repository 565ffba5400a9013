package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpessoni/pokedex/internal/browser"
	"github.com/gpessoni/pokedex/internal/collection"
	"github.com/gpessoni/pokedex/internal/domain"
	"github.com/gpessoni/pokedex/internal/log"
	"github.com/gpessoni/pokedex/internal/notify"
	"github.com/gpessoni/pokedex/internal/session"
)

var _ tea.Model = Model{}

type fakeCatalog struct{}

func (fakeCatalog) List(context.Context, int, int) ([]domain.Pokemon, bool, error) {
	return nil, false, nil
}
func (fakeCatalog) GetByName(context.Context, string) (domain.Pokemon, error) {
	return domain.Pokemon{}, domain.ErrNotFound
}
func (fakeCatalog) GetByID(context.Context, int) (domain.Pokemon, error) {
	return domain.Pokemon{}, domain.ErrNotFound
}

type fakeOwnership struct{}

func (fakeOwnership) ListMine(context.Context) ([]domain.CaughtPokemon, error) { return nil, nil }
func (fakeOwnership) Catch(context.Context, int, string, string) (domain.CaughtPokemon, error) {
	return domain.CaughtPokemon{}, nil
}
func (fakeOwnership) Release(context.Context, string) (domain.CaughtPokemon, error) {
	return domain.CaughtPokemon{}, nil
}

type fakeAuth struct{}

func (fakeAuth) Login(context.Context, string, string) (domain.Credential, error) {
	return domain.Credential{}, nil
}
func (fakeAuth) Register(context.Context, string, string, string) (domain.Credential, error) {
	return domain.Credential{}, nil
}

type fakeTrainers struct{}

func (fakeTrainers) ListTrainers(context.Context) ([]domain.Trainer, error) { return nil, nil }
func (fakeTrainers) TrainerPokemons(context.Context, string) ([]domain.CaughtPokemon, error) {
	return nil, nil
}

func newTestModel(t *testing.T, authenticated bool) Model {
	t.Helper()

	sess := session.New(nil, log.NullLogger())
	if authenticated {
		sess.Establish(domain.Credential{
			Token: "token-1",
			User:  domain.User{ID: "u1", Name: "Ash", Email: "ash@example.com"},
		})
	}
	coll := collection.NewService(fakeOwnership{}, log.NullLogger())

	m := NewModel(fakeCatalog{}, fakeAuth{}, fakeTrainers{}, coll, sess,
		20, 5*time.Second, log.NullLogger())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func pokemons(names ...string) []domain.Pokemon {
	out := make([]domain.Pokemon, len(names))
	for i, name := range names {
		out[i] = domain.Pokemon{ID: i + 1, Name: name, Types: []string{"normal"}}
	}
	return out
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStartsOnLoginWhenLoggedOut(t *testing.T) {
	m := newTestModel(t, false)
	assert.Equal(t, ViewLogin, m.view)
}

func TestStartsOnBrowseWithRestoredSession(t *testing.T) {
	m := newTestModel(t, true)
	assert.Equal(t, ViewBrowse, m.view)
}

func TestPageLoadedFillsBrowser(t *testing.T) {
	m := newTestModel(t, true)

	req := m.Browser.LoadFirst()
	updated, _ := m.Update(PageLoadedMsg{Seq: req.Seq, Items: pokemons("bulbasaur", "ivysaur"), HasNext: true})
	m = updated.(Model)

	require.Len(t, m.Browser.Items(), 2)
	assert.True(t, m.Browser.HasNext())
}

func TestStalePageIsIgnored(t *testing.T) {
	m := newTestModel(t, true)

	stale := m.Browser.LoadFirst()
	fresh := m.Browser.LoadFirst()

	updated, _ := m.Update(PageLoadedMsg{Seq: stale.Seq, Items: pokemons("bulbasaur")})
	m = updated.(Model)
	assert.Empty(t, m.Browser.Items())

	updated, _ = m.Update(PageLoadedMsg{Seq: fresh.Seq, Items: pokemons("charmander")})
	m = updated.(Model)
	require.Len(t, m.Browser.Items(), 1)
	assert.Equal(t, "charmander", m.Browser.Items()[0].Name)
}

func TestAuthResultOpensBrowse(t *testing.T) {
	m := newTestModel(t, false)

	cred := domain.Credential{Token: "token-2", User: domain.User{Name: "Misty"}}
	updated, cmd := m.Update(AuthResultMsg{Cred: &cred})
	m = updated.(Model)

	assert.Equal(t, ViewBrowse, m.view)
	assert.True(t, m.Session.Authenticated())
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.Toasts.Len())
}

func TestAuthFailureStaysOnLogin(t *testing.T) {
	m := newTestModel(t, false)

	updated, _ := m.Update(AuthResultMsg{Err: domain.ErrValidation})
	m = updated.(Model)

	assert.Equal(t, ViewLogin, m.view)
	assert.False(t, m.Session.Authenticated())
}

func TestSessionExpiryRoutesToLoginOnce(t *testing.T) {
	m := newTestModel(t, true)

	req := m.Browser.LoadFirst()
	updated, _ := m.Update(PageLoadedMsg{Seq: req.Seq, Items: pokemons("pikachu")})
	m = updated.(Model)

	updated, _ = m.Update(SessionExpiredMsg{})
	m = updated.(Model)
	assert.Equal(t, ViewLogin, m.view)
	assert.Empty(t, m.Browser.Items())

	// A second concurrent expiry report is a no-op.
	updated, _ = m.Update(SessionExpiredMsg{})
	m = updated.(Model)
	assert.Equal(t, ViewLogin, m.view)
}

func TestExpiredSessionErrorsAreNotToasted(t *testing.T) {
	m := newTestModel(t, true)

	req := m.Browser.LoadFirst()
	updated, cmd := m.Update(PageFailedMsg{Seq: req.Seq, Err: domain.ErrSessionExpired})
	m = updated.(Model)

	assert.Nil(t, cmd)
	assert.Zero(t, m.Toasts.Len())
}

func TestCatchSuccessToastsAndExpires(t *testing.T) {
	m := newTestModel(t, true)

	updated, cmd := m.Update(PokemonCaughtMsg{Name: "pikachu"})
	m = updated.(Model)
	require.Equal(t, 1, m.Toasts.Len())
	require.NotNil(t, cmd)

	id := m.Toasts.Items()[0].ID
	updated, _ = m.Update(ToastExpiredMsg{ID: id})
	m = updated.(Model)
	assert.Zero(t, m.Toasts.Len())
}

func TestReleaseRequiresSecondPress(t *testing.T) {
	m := newTestModel(t, true)
	m.view = ViewCollection
	m.Caught.SetRecords([]domain.CaughtPokemon{
		{ID: "rec-1", PokemonID: 25, Name: "pikachu", CaughtAt: time.Now()},
	})

	x := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}

	updated, cmd := m.Update(x)
	m = updated.(Model)
	require.NotNil(t, cmd, "first press should warn via toast")
	assert.Equal(t, 1, m.Toasts.Len())

	_, cmd = m.Update(x)
	assert.NotNil(t, cmd, "second press should issue the release")
}

func TestCursorMoveDisarmsRelease(t *testing.T) {
	m := newTestModel(t, true)
	m.view = ViewCollection
	m.Caught.SetRecords([]domain.CaughtPokemon{
		{ID: "rec-1", PokemonID: 25, Name: "pikachu", CaughtAt: time.Now()},
		{ID: "rec-2", PokemonID: 7, Name: "squirtle", CaughtAt: time.Now()},
	})

	x := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}

	updated, _ := m.Update(x)
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)

	updated, _ = m.Update(x)
	m = updated.(Model)
	assert.Equal(t, "rec-2", m.confirmRelease, "moving the cursor re-arms on the new record")
}

func TestSearchHitConfirmedByToast(t *testing.T) {
	m := newTestModel(t, true)

	req, ok := m.Browser.Search("pikachu")
	require.True(t, ok)

	updated, cmd := m.Update(SearchFoundMsg{Seq: req.Seq, Item: domain.Pokemon{ID: 25, Name: "pikachu"}})
	m = updated.(Model)

	require.NotNil(t, cmd)
	require.Equal(t, 1, m.Toasts.Len())
	assert.Equal(t, notify.SeveritySuccess, m.Toasts.Items()[0].Severity)
}

func TestSearchMissPostsErrorToastAndRestores(t *testing.T) {
	m := newTestModel(t, true)

	req, ok := m.Browser.Search("missingno")
	require.True(t, ok)

	updated, cmd := m.Update(SearchFailedMsg{Seq: req.Seq, Term: "missingno", Err: domain.ErrNotFound})
	m = updated.(Model)

	require.NotNil(t, cmd)
	require.Equal(t, 1, m.Toasts.Len())
	assert.Equal(t, notify.SeverityError, m.Toasts.Items()[0].Severity)
	assert.False(t, m.Browser.InSearch(), "a miss falls back to the default paged view")
	assert.Equal(t, browser.StateLoadingInitial, m.Browser.State())
}

func TestEmptySearchSubmitRestoresPagedView(t *testing.T) {
	m := newTestModel(t, true)

	req, ok := m.Browser.Search("pikachu")
	require.True(t, ok)
	updated, _ := m.Update(SearchFoundMsg{Seq: req.Seq, Item: domain.Pokemon{ID: 25, Name: "pikachu"}})
	m = updated.(Model)
	require.True(t, m.Browser.InSearch())

	updated, _ = m.Update(keyRune('s'))
	m = updated.(Model)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.NotNil(t, cmd, "empty submit should reload the default view")
	assert.False(t, m.Browser.InSearch())
	assert.Equal(t, browser.StateLoadingInitial, m.Browser.State())
}

func TestDismissKeyRemovesOldestToast(t *testing.T) {
	m := newTestModel(t, true)

	updated, _ := m.Update(PokemonCaughtMsg{Name: "pikachu"})
	m = updated.(Model)
	updated, _ = m.Update(PokemonCaughtMsg{Name: "squirtle"})
	m = updated.(Model)
	require.Equal(t, 2, m.Toasts.Len())

	updated, _ = m.Update(keyRune('d'))
	m = updated.(Model)
	require.Equal(t, 1, m.Toasts.Len())
	assert.Contains(t, m.Toasts.Items()[0].Message, "squirtle")
}

type recordingCatalog struct {
	fakeCatalog
	byID   int
	byName string
}

func (c *recordingCatalog) GetByID(_ context.Context, id int) (domain.Pokemon, error) {
	c.byID = id
	return domain.Pokemon{ID: id}, nil
}

func (c *recordingCatalog) GetByName(_ context.Context, name string) (domain.Pokemon, error) {
	c.byName = name
	return domain.Pokemon{Name: name}, nil
}

func TestSearchNumericTermLooksUpByID(t *testing.T) {
	src := &recordingCatalog{}

	msg := SearchCmd(src, browser.SearchRequest{Seq: 1, Term: "25"})()
	require.IsType(t, SearchFoundMsg{}, msg)
	assert.Equal(t, 25, src.byID)
	assert.Empty(t, src.byName)

	msg = SearchCmd(src, browser.SearchRequest{Seq: 2, Term: "pikachu"})()
	require.IsType(t, SearchFoundMsg{}, msg)
	assert.Equal(t, "pikachu", src.byName)
}

func TestDetailLoadedRemembersOrigin(t *testing.T) {
	m := newTestModel(t, true)

	updated, _ := m.Update(DetailLoadedMsg{Item: domain.Pokemon{ID: 25, Name: "pikachu"}})
	m = updated.(Model)
	require.Equal(t, ViewDetail, m.view)
	require.NotNil(t, m.Detail)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	assert.Equal(t, ViewBrowse, m.view)
	assert.Nil(t, m.Detail)
}
