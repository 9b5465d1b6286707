package riskgate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fraudsight/riskgate/store"
)

type recordingNavigator struct {
	calls atomic.Int32
}

func (n *recordingNavigator) ToLogin() {
	n.calls.Add(1)
}

// fixedLoginHandler answers /auth/login with a fixed token and user.
func fixedLoginHandler(token string, user string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"token": token,
				"user":  json.RawMessage(user),
			},
		})
	})
	return mux
}

type gatewayFixture struct {
	gateway    *Gateway
	store      *store.Memory
	navigator  *recordingNavigator
	identity   *httptest.Server
	analytical *httptest.Server
}

func newTestGateway(t *testing.T, identity, analytical http.Handler) *gatewayFixture {
	t.Helper()

	if identity == nil {
		identity = http.NotFoundHandler()
	}
	if analytical == nil {
		analytical = http.NotFoundHandler()
	}

	identitySrv := httptest.NewServer(identity)
	analyticalSrv := httptest.NewServer(analytical)
	t.Cleanup(identitySrv.Close)
	t.Cleanup(analyticalSrv.Close)

	cfg := DefaultConfig()
	cfg.Identity.BaseURL = identitySrv.URL
	cfg.Analytical.BaseURL = analyticalSrv.URL
	cfg.Identity.Timeout = 5 * time.Second
	cfg.Analytical.Timeout = 5 * time.Second

	sessions := store.NewMemory()
	navigator := &recordingNavigator{}

	gateway, err := New().
		WithConfig(cfg).
		WithStore(sessions).
		WithNavigator(navigator).
		Build(context.Background())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return &gatewayFixture{
		gateway:    gateway,
		store:      sessions,
		navigator:  navigator,
		identity:   identitySrv,
		analytical: analyticalSrv,
	}
}

func TestLoginEndToEnd(t *testing.T) {
	var gotAuth atomic.Value

	analytical := http.NewServeMux()
	analytical.HandleFunc("POST /legal/analyze", func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(LegalDocumentAnalysis{
			Excerpt:   "whereas the party",
			RiskScore: 0.12,
			Status:    "clean",
		})
	})

	fx := newTestGateway(t, fixedLoginHandler("T1", `{"id":1}`), analytical)
	ctx := context.Background()

	fragment, err := fx.gateway.Login(ctx, Credentials{Identifier: "a@b.com", Secret: "x"}).Wait(ctx)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if fragment.Token != "T1" {
		t.Fatalf("expected token T1, got %q", fragment.Token)
	}

	snap := fx.gateway.Session()
	if !snap.IsAuthenticated {
		t.Fatal("expected authenticated session after login")
	}
	if snap.Token != "T1" {
		t.Fatalf("container token = %q, want T1", snap.Token)
	}
	if string(snap.User) != `{"id":1}` {
		t.Fatalf("container user = %s", snap.User)
	}

	entry, err := fx.store.Load(ctx)
	if err != nil {
		t.Fatalf("store load: %v", err)
	}
	if entry.Token != "T1" || string(entry.User) != `{"id":1}` {
		t.Fatalf("persisted entry = %+v", entry)
	}

	if _, err := fx.gateway.AnalyzeLegalDocument(ctx, "whereas the party of the first part"); err != nil {
		t.Fatalf("analytical call failed: %v", err)
	}
	if got := gotAuth.Load(); got != "Bearer T1" {
		t.Fatalf("analytical Authorization = %v, want Bearer T1", got)
	}
}

func TestLogoutClearsBothSides(t *testing.T) {
	fx := newTestGateway(t, fixedLoginHandler("T1", `{"id":1}`), nil)
	ctx := context.Background()

	if _, err := fx.gateway.Login(ctx, Credentials{Identifier: "a@b.com", Secret: "x"}).Wait(ctx); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := fx.gateway.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if fx.gateway.IsAuthenticated() {
		t.Fatal("expected unauthenticated after logout")
	}
	entry, err := fx.store.Load(ctx)
	if err != nil {
		t.Fatalf("store load: %v", err)
	}
	if !entry.IsZero() {
		t.Fatalf("expected cleared store, got %+v", entry)
	}

	// Logout with no session must stay a no-op.
	if err := fx.gateway.Logout(ctx); err != nil {
		t.Fatalf("repeated Logout failed: %v", err)
	}
	if fx.navigator.calls.Load() != 0 {
		t.Fatal("logout must not trigger navigation")
	}
}

func TestBuildHydratesPersistedSession(t *testing.T) {
	ctx := context.Background()

	sessions := store.NewMemory()
	if err := sessions.Save(ctx, store.Entry{Token: "persisted", User: []byte(`{"id":7}`)}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	cfg := DefaultConfig()
	gateway, err := New().WithConfig(cfg).WithStore(sessions).Build(ctx)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	snap := gateway.Session()
	if !snap.IsAuthenticated || snap.Token != "persisted" {
		t.Fatalf("expected hydrated session, got %+v", snap)
	}
	if got := gateway.MetricsSnapshot().Counters[MetricSessionHydrated]; got != 1 {
		t.Fatalf("MetricSessionHydrated = %d, want 1", got)
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New()
	if _, err := b.Build(context.Background()); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	if _, err := b.Build(context.Background()); err == nil {
		t.Fatal("expected error on second Build")
	}
}

func TestBuilderRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analytical.BaseURL = "not a url"
	if _, err := New().WithConfig(cfg).Build(context.Background()); err == nil {
		t.Fatal("expected invalid config error")
	}
}

func TestBuilderRejectsStoreAndRedis(t *testing.T) {
	_, rdb := newTestRedis(t)

	_, err := New().
		WithStore(store.NewMemory()).
		WithRedis(rdb, "rg", 0).
		Build(context.Background())
	if err == nil {
		t.Fatal("expected WithStore/WithRedis conflict error")
	}
}
